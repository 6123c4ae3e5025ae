package models

// All returns every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&AccountModel{},
		&DepartmentModel{},
		&AdminProfileModel{},
		&ComplaintModel{},
		&ComplaintImageModel{},
		&ComplaintUpvoteModel{},
		&NotificationModel{},
	}
}
