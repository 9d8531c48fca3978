package models

// Department is an organizational unit grouping positions and employees.
type Department struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relations
	Positions []Position `gorm:"foreignKey:DepartmentID" json:"positions,omitempty"`
	Employees []Employee `gorm:"foreignKey:DepartmentID" json:"employees,omitempty"`
}
