package services

import (
	"context"
	"strings"
	"unicode"
)

// SentimentResult carries the polarity (-1..1) and subjectivity (0..1)
// scores for a piece of text.
type SentimentResult struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// sentimentEntry is a lexicon row: how positive/negative a word is and how
// subjective its use tends to be.
type sentimentEntry struct {
	polarity     float64
	subjectivity float64
}

// lexicon is a compact pattern-style sentiment lexicon. Scores are averaged
// over matched words; words outside the lexicon carry no signal.
var lexicon = map[string]sentimentEntry{
	"amazing":      {0.6, 0.9},
	"awesome":      {1.0, 1.0},
	"awful":        {-1.0, 1.0},
	"bad":          {-0.7, 0.67},
	"beautiful":    {0.85, 1.0},
	"best":         {1.0, 0.3},
	"boring":       {-1.0, 1.0},
	"brilliant":    {0.9, 0.9},
	"broken":       {-0.4, 0.4},
	"cheap":        {-0.4, 0.7},
	"clean":        {0.4, 0.6},
	"cool":         {0.35, 0.65},
	"delicious":    {1.0, 1.0},
	"difficult":    {-0.5, 1.0},
	"dirty":        {-0.6, 0.8},
	"disappointed": {-0.75, 0.75},
	"disgusting":   {-1.0, 1.0},
	"dreadful":     {-1.0, 1.0},
	"easy":         {0.43, 0.83},
	"excellent":    {1.0, 1.0},
	"excited":      {0.375, 0.75},
	"fantastic":    {0.4, 0.9},
	"fast":         {0.2, 0.5},
	"fine":         {0.42, 0.54},
	"friendly":     {0.45, 0.6},
	"fun":          {0.3, 0.2},
	"glad":         {0.5, 1.0},
	"good":         {0.7, 0.6},
	"great":        {0.8, 0.75},
	"happy":        {0.8, 1.0},
	"hate":         {-0.8, 0.9},
	"helpful":      {0.3, 0.3},
	"horrible":     {-1.0, 1.0},
	"interesting":  {0.5, 0.5},
	"lazy":         {-0.4, 0.7},
	"love":         {0.5, 0.6},
	"lovely":       {0.75, 0.95},
	"mediocre":     {-0.3, 0.6},
	"nice":         {0.6, 1.0},
	"painful":      {-0.7, 0.9},
	"perfect":      {1.0, 1.0},
	"pleasant":     {0.6, 0.8},
	"poor":         {-0.4, 0.6},
	"pretty":       {0.25, 0.7},
	"rude":         {-0.6, 0.9},
	"sad":          {-0.5, 1.0},
	"slow":         {-0.3, 0.4},
	"smooth":       {0.4, 0.65},
	"terrible":     {-1.0, 1.0},
	"ugly":         {-0.7, 0.9},
	"unhappy":      {-0.6, 1.0},
	"useful":       {0.3, 0.2},
	"useless":      {-0.5, 0.6},
	"wonderful":    {1.0, 1.0},
	"worst":        {-1.0, 1.0},
	"wrong":        {-0.5, 0.6},
}

// negations invert the polarity of the following lexicon word.
var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nor": {}, "cannot": {},
}

// intensifiers scale the polarity of the following lexicon word.
var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "so": 1.2, "too": 1.2,
	"quite": 1.1, "slightly": 0.7, "somewhat": 0.8,
}

// SentimentService scores text polarity and subjectivity. Pure and
// deterministic: identical input always yields identical scores.
type SentimentService struct{}

// NewSentimentService creates a new SentimentService instance.
func NewSentimentService() *SentimentService {
	return &SentimentService{}
}

// Analyze scores the given text. Text without any lexicon word scores
// neutral {0, 0}.
func (svc *SentimentService) Analyze(ctx context.Context, text string) SentimentResult {
	words := tokenize(text)

	var (
		polaritySum     float64
		subjectivitySum float64
		matched         int
		negate          bool
		scale           = 1.0
	)

	for _, word := range words {
		if _, ok := negations[word]; ok {
			negate = !negate
			continue
		}
		if strings.HasSuffix(word, "n't") {
			negate = !negate
			continue
		}
		if factor, ok := intensifiers[word]; ok {
			scale *= factor
			continue
		}

		entry, ok := lexicon[word]
		if !ok {
			// A non-sentiment word breaks the negation/intensifier chain.
			negate = false
			scale = 1.0
			continue
		}

		p := entry.polarity * scale
		if negate {
			p = -p * 0.5
		}
		polaritySum += clamp(p, -1, 1)
		subjectivitySum += entry.subjectivity
		matched++

		negate = false
		scale = 1.0
	}

	if matched == 0 {
		return SentimentResult{}
	}

	return SentimentResult{
		Polarity:     clamp(polaritySum/float64(matched), -1, 1),
		Subjectivity: clamp(subjectivitySum/float64(matched), 0, 1),
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
