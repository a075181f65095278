package model

// All returns every model managed by AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&PasswordResetTokenModel{},
		&CategoryModel{},
		&ToolModel{},
		&EmailQueueModel{},
	}
}
