package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/cleaningmadeasy/laundry-api/models"
	"gorm.io/gorm"
)

// IDGenerator allocates public order identifiers.
type IDGenerator interface {
	Generate() (string, error)
}

// maxIDAttempts bounds the retry loop; the unique index on orders.order_id
// is the backstop if two requests race past the existence check.
const maxIDAttempts = 5

// RandomIDGenerator draws ORD-#### identifiers with a 4-digit random
// number and retries when the candidate is already taken.
type RandomIDGenerator struct {
	db *gorm.DB
}

// NewRandomIDGenerator creates an ID generator backed by the given database
func NewRandomIDGenerator(db *gorm.DB) *RandomIDGenerator {
	return &RandomIDGenerator{db: db}
}

// Generate returns an order identifier matching ORD-\d{4} that does not
// exist in the store at the time of the check.
func (g *RandomIDGenerator) Generate() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(9000))
		if err != nil {
			return "", fmt.Errorf("failed to draw order id: %w", err)
		}
		candidate := fmt.Sprintf("ORD-%d", 1000+n.Int64())

		var count int64
		if err := g.db.Model(&models.Order{}).Where("order_id = ?", candidate).Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check order id uniqueness: %w", err)
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", ErrIDExhausted
}
