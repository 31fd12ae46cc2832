package services

import (
	"fmt"
	"math"
	"strings"
)

const deliveryBullet = "Delivered measurable results by translating requirements into features, tests, and CI workflows."

// TemplateBullets builds the non-LLM bullets from the skill match.
func TemplateBullets(matched, missing []string) []string {
	var bullets []string
	if len(matched) > 0 {
		bullets = append(bullets, fmt.Sprintf("Aligned with core requirements including: %s.", strings.Join(head(matched, 8), ", ")))
	}
	if len(missing) > 0 {
		bullets = append(bullets, fmt.Sprintf("Proactively closing gaps in: %s (actively learning/implementing).", strings.Join(head(missing, 6), ", ")))
	}
	return append(bullets, deliveryBullet)
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
