// Package docs is generated by swaggo/swag. Regenerate with
// `swag init -g cmd/civicdesk/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/complaints": {
            "get": {"security": [{"Bearer": []}], "produces": ["application/json"], "tags": ["complaints"], "summary": "List complaints for staff", "responses": {"200": {"description": "OK"}}},
            "post": {"consumes": ["application/json", "multipart/form-data"], "produces": ["application/json"], "tags": ["complaints"], "summary": "Submit a complaint", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/complaints/track/{complaint_id}": {
            "get": {"produces": ["application/json"], "tags": ["complaints"], "summary": "Track a complaint by its public identifier", "parameters": [{"type": "string", "name": "complaint_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/complaints/public": {
            "get": {"produces": ["application/json"], "tags": ["complaints"], "summary": "Public complaint feed", "responses": {"200": {"description": "OK"}}}
        },
        "/departments": {
            "get": {"produces": ["application/json"], "tags": ["departments"], "summary": "List departments", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/login": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["auth"], "summary": "Log in with username and password", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/notifications": {
            "get": {"security": [{"Bearer": []}], "produces": ["application/json"], "tags": ["notifications"], "summary": "List the caller's notifications", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "CivicDesk API",
	Description:      "Civic complaint intake, tracking and triage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
