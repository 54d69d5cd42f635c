package soal

// Placeholder texts used when the backend has no entry for a dimension.
const (
	PlaceholderExplanation = "Penjelasan tidak tersedia."
	PlaceholderAdvice      = "Rekomendasi tidak tersedia."
)

// Merge combines scores with recommendations for every known dimension.
// Entries with unknown dimension names are ignored; the first entry wins
// when the backend repeats a dimension.
func Merge(scores ScoreResponse, entries []RecommendationEntry) Result {
	byDim := make(map[Dimension]RecommendationEntry, len(Dimensions))
	for _, entry := range entries {
		dim, ok := ParseDimension(entry.Dimension)
		if !ok {
			continue
		}
		if _, seen := byDim[dim]; seen {
			continue
		}
		byDim[dim] = entry
	}

	recs := make([]Recommendation, 0, len(Dimensions))
	for _, dim := range Dimensions {
		rec := Recommendation{
			Dimension:   dim,
			Explanation: PlaceholderExplanation,
			Advice:      PlaceholderAdvice,
		}
		if entry, ok := byDim[dim]; ok {
			rec.Explanation = entry.Explanation
			rec.Advice = entry.Advice
		}
		recs = append(recs, rec)
	}
	return Result{
		Scores:          scores.ByDimension(),
		Recommendations: recs,
	}
}
