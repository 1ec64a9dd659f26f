package domain

import (
	"time"
)

// Department представляет подразделение компании
type Department struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(15);not null"`
	Location  string    `json:"location" gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника
type Employee struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	LastName     string     `json:"lastName" gorm:"type:varchar(10);not null"`
	FirstName    string     `json:"firstName" gorm:"type:varchar(10);not null"`
	Email        string     `json:"email" gorm:"type:varchar(100);not null;uniqueIndex:employees_email_key"`
	DepartmentID int64      `json:"departmentId" gorm:"not null;index"`
	Position     string     `json:"position" gorm:"type:varchar(15);not null"`
	HireDate     *time.Time `json:"hireDate" gorm:"type:date"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}
