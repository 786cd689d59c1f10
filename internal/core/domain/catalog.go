package domain

import (
	"errors"
	"time"
)

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyExists      = errors.New("company already exists")
	ErrClothesNotFound    = errors.New("clothes not found")
	ErrInvalidCatalogItem = errors.New("invalid catalog item")
)

// ClothesPart is the part of an outfit a garment covers.
type ClothesPart string

const (
	PartTop    ClothesPart = "TOP"
	PartBottom ClothesPart = "BOTTOM"
	PartOuter  ClothesPart = "OUTER"
	PartShoes  ClothesPart = "SHOES"
)

// Valid reports whether p is one of the known parts.
func (p ClothesPart) Valid() bool {
	switch p {
	case PartTop, PartBottom, PartOuter, PartShoes:
		return true
	}
	return false
}

// Company is a clothing brand or vendor.
type Company struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:128;not null;uniqueIndex"`
	CreatedBy string `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Company) TableName() string {
	return "companies"
}

// Clothes is a single garment. Each garment belongs to one company.
type Clothes struct {
	ID        uint        `gorm:"primaryKey"`
	Name      string      `gorm:"size:128;not null"`
	Part      ClothesPart `gorm:"size:16;not null"`
	CompanyID uint        `gorm:"not null;index"`
	Company   *Company    `gorm:"foreignKey:CompanyID"`
	CreatedBy string      `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Clothes) TableName() string {
	return "clothes"
}
