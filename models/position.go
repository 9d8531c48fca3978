package models

// Position is a job title, optionally scoped to a department. Deleting the
// department clears the reference instead of removing the position.
type Position struct {
	BaseModel
	Title        string `gorm:"type:varchar(100);not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	DepartmentID *uint  `gorm:"index" json:"department_id"`

	// Relations
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL" json:"department,omitempty"`
	Employees  []Employee  `gorm:"foreignKey:PositionID" json:"employees,omitempty"`
}

// PositionOption is the slim shape served to the dependent position dropdown.
type PositionOption struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}
