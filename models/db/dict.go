package dbmodels

type Department struct {
	BaseModel
	Name        string `gorm:"type:varchar(150);uniqueIndex"`
	Code        string `gorm:"type:varchar(20)"`
	Description string
}

type JobLevel struct {
	BaseModel
	Name  string `gorm:"type:varchar(150);uniqueIndex"`
	Code  string `gorm:"type:varchar(20)"`
	Grade int
}

type Location struct {
	BaseModel
	Name    string `gorm:"type:varchar(150);uniqueIndex"`
	City    string `gorm:"type:varchar(100)"`
	Country string `gorm:"type:varchar(100)"`
}
