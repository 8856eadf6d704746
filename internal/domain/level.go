package domain

import "fmt"

// LevelKey is the natural key of a difficulty tier.
type LevelKey string

const (
	LevelJunior LevelKey = "junior"
	LevelMiddle LevelKey = "middle"
	LevelSenior LevelKey = "senior"
)

// LevelKeys lists the tiers in seeding order.
var LevelKeys = []LevelKey{LevelJunior, LevelMiddle, LevelSenior}

// Valid reports whether k is one of the known tiers.
func (k LevelKey) Valid() bool {
	switch k {
	case LevelJunior, LevelMiddle, LevelSenior:
		return true
	}
	return false
}

// SemanticKey is the string hashed into the level's ID.
func (k LevelKey) SemanticKey() string {
	return "level-" + string(k)
}

// Level represents a difficulty tier. Upserted by Key on every run.
type Level struct {
	ID         string
	Key        LevelKey
	NameUk     string
	NameEn     string
	IsActive   bool
	OrderIndex int
}

// LevelIDs maps a level key to the persisted level ID.
type LevelIDs map[LevelKey]string

// Resolve returns the persisted ID for key.
func (ids LevelIDs) Resolve(key LevelKey) (string, error) {
	id, ok := ids[key]
	if !ok || id == "" {
		return "", NewUnknownLevelError(string(key))
	}
	return id, nil
}

func (l Level) String() string {
	return fmt.Sprintf("%s(%s)", l.Key, l.ID)
}
