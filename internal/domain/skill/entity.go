package skill

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type JobSkill struct {
	ID         uuid.UUID
	JobID      uuid.UUID
	SkillID    uuid.UUID
	IsRequired bool
	CreatedAt  time.Time
}

// JobSkillDetail carries the skill name alongside the link row for
// job detail responses.
type JobSkillDetail struct {
	JobSkill
	Name string
}

type UserSkill struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SkillID          uuid.UUID
	ProficiencyLevel int16
	YearsExperience  int16
	CreatedAt        time.Time
}

// UserSkillDetail carries the skill name alongside the link row for
// profile responses.
type UserSkillDetail struct {
	UserSkill
	Name string
}
