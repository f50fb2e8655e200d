package content

import "github.com/heartmarshall/phonics-backend/internal/domain"

// Bundle assembles explanations, rules, tips and common errors.
func Bundle(rec *domain.PhonemeRecord) domain.TeachingContentBundle {
	return domain.TeachingContentBundle{
		Explanations: Explanations(rec),
		Rules:        Rules(rec),
		Tips:         Tips(rec),
		CommonErrors: CommonErrors(rec),
	}
}
