package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsultationCacheKeyIsSharedWithPrescriptionWrites(t *testing.T) {
	// PrescriptionRepository.CreateWithRequestCompletion flips the
	// request's status inside its transaction and must evict the exact key
	// the consultation reads populate; both sides go through this one
	// function.
	assert.Equal(t, "consultation_cache:req-1", consultationCacheKey("req-1"))
}
