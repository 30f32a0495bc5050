package models

// User represents an employee who can borrow devices or process requests
type User struct {
	BaseModel
	Name  string   `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Email string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role  UserRole `json:"role" gorm:"type:varchar(20);not null;default:'user'" validate:"required"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
