// Package matcher finds the best catalog candidate for an extracted line
// item, combining exact SKU lookups with fuzzy name similarity.
package matcher

import (
	"strings"

	"github.com/facturio/invoice-price-alerts/pkg/similarity"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// Confidence assigned to each match rule. A supplier reference matching a
// candidate SKU is slightly less certain than the item's own SKU matching.
const (
	confidenceSKU       = 1.0
	confidenceReference = 0.95
	confidenceExactName = 0.9

	// similarityFloor is the minimum fuzzy name similarity considered a match.
	similarityFloor = 0.8

	// updateConfidence is the minimum confidence for recommending an
	// automatic update of the existing product.
	updateConfidence = 0.7
)

// Item is the subset of a line item the matcher needs.
type Item struct {
	Name      string
	SKU       string
	Reference string
}

// FromLineItem builds a matcher Item from an extracted line item.
func FromLineItem(li *domain.LineItem) Item {
	return Item{
		Name:      li.Description,
		SKU:       li.SKU,
		Reference: li.Reference,
	}
}

// Find returns the best match for item across candidates from the local
// product store and the external catalog. Local candidates are evaluated
// first, so on equal confidence the local record wins. When no candidate
// clears the similarity floor the match has a nil product and zero
// confidence.
func Find(item Item, local, catalog []domain.ProductRecord) domain.ProductMatch {
	best := domain.ProductMatch{
		Confidence: 0,
		MatchType:  domain.MatchPartial,
	}

	consider := func(candidates []domain.ProductRecord) {
		for i := range candidates {
			conf, mt, ok := score(item, &candidates[i])
			if ok && conf > best.Confidence {
				best.Product = &candidates[i]
				best.Confidence = conf
				best.MatchType = mt
			}
		}
	}

	consider(local)
	consider(catalog)

	best.SuggestedAction = suggestedAction(best.Confidence)
	return best
}

// score evaluates one candidate against the match rules in precedence order.
func score(item Item, candidate *domain.ProductRecord) (float64, domain.MatchType, bool) {
	if sku := normalizeSKU(candidate.SKU); sku != "" {
		if normalizeSKU(item.SKU) == sku {
			return confidenceSKU, domain.MatchExactSKU, true
		}
		if normalizeSKU(item.Reference) == sku {
			return confidenceReference, domain.MatchExactSKU, true
		}
	}

	itemName := similarity.Normalize(item.Name)
	if itemName == "" {
		return 0, domain.MatchPartial, false
	}

	candidateName := similarity.Normalize(candidate.Name)
	if itemName == candidateName {
		return confidenceExactName, domain.MatchExactName, true
	}

	if sim := similarity.Similarity(itemName, candidateName); sim > similarityFloor {
		return sim, domain.MatchSimilarName, true
	}

	return 0, domain.MatchPartial, false
}

func normalizeSKU(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func suggestedAction(confidence float64) domain.SuggestedAction {
	switch {
	case confidence > updateConfidence:
		return domain.ActionUpdateExisting
	case confidence > 0:
		return domain.ActionManualReview
	default:
		return domain.ActionCreateNew
	}
}
