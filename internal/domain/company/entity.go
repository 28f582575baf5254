package company

import (
	"time"

	"github.com/google/uuid"
)

type Size string

const (
	Size1to10      Size = "1-10"
	Size11to50     Size = "11-50"
	Size51to200    Size = "51-200"
	Size201to500   Size = "201-500"
	Size501to1000  Size = "501-1000"
	SizeOver1000   Size = "1000+"
	SizeUnreported Size = ""
)

func (s Size) Valid() bool {
	switch s {
	case Size1to10, Size11to50, Size51to200, Size201to500, Size501to1000, SizeOver1000, SizeUnreported:
		return true
	}
	return false
}

type Company struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Website     string
	Industry    string
	Size        Size
	Location    string
	LogoURL     string
	FoundedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
