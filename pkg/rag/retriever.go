package rag

import (
	"sort"
	"strings"

	"kb-chatbot-be/internal/pkg/logger"
)

// Config encapsulates retrieval parameters.
type Config struct {
	// ScoreFloor is the relevance threshold: an item survives only if its
	// score is strictly above it. 4 means one medium token match is not
	// enough, one strong match or two mediums is.
	ScoreFloor float64
	// TopK caps how many ranked items make it into the context block.
	TopK int
}

// DefaultConfig returns the calibrated retrieval parameters.
func DefaultConfig() Config {
	return Config{
		ScoreFloor: 4,
		TopK:       6,
	}
}

// Query is one retrieval request. ForcedTopic is an explicit caller
// preference; MemoryTopic is the topic remembered from the session's
// previous turn. Either biases candidate ordering, but only a memory topic
// arms the one-shot retry when the first pass comes up empty.
type Query struct {
	Text        string
	ForcedTopic string
	MemoryTopic string
}

// ScoredItem is a transient ranking artifact pairing an item with its
// relevance score.
type ScoredItem struct {
	Item  KnowledgeItem
	Score float64
}

// RetrievalResult is a successful retrieval: the newline-joined context
// block, the majority topic among the survivors, and the ranked items
// themselves for callers that want citations.
type RetrievalResult struct {
	Context       string
	DetectedTopic string
	Ranked        []ScoredItem
}

// Retriever orchestrates normalization, expansion, scoring, ranking and
// topic inference over the knowledge base. It holds only read-only state
// and is safe for concurrent use.
type Retriever struct {
	kb      *KnowledgeBase
	lexicon *Lexicon
	scorer  Scorer
	config  Config
	logger  logger.ILogger
}

// NewRetriever creates a retriever. A nil scorer falls back to the default
// char-aligned ScoreItem; a nil logger disables debug output.
func NewRetriever(kb *KnowledgeBase, lexicon *Lexicon, scorer Scorer, config Config, log logger.ILogger) *Retriever {
	if scorer == nil {
		scorer = ScoreItem
	}
	return &Retriever{
		kb:      kb,
		lexicon: lexicon,
		scorer:  scorer,
		config:  config,
		logger:  log,
	}
}

// Retrieve runs the retrieval pipeline. The second return value is false
// when nothing in the knowledge base is relevant enough: the NO_CONTEXT
// outcome. Callers must treat that as "do not ask the model, answer with
// the fixed refusal".
//
// When the first pass finds nothing and the topic came from session
// memory, the pipeline is retried exactly once with the remembered topic
// prefixed to the query text. An explicitly forced topic never triggers
// the retry.
func (r *Retriever) Retrieve(q Query) (*RetrievalResult, bool) {
	priorTopic := q.ForcedTopic
	if priorTopic == "" {
		priorTopic = q.MemoryTopic
	}

	if result := r.retrieveOnce(q.Text, priorTopic); result != nil {
		return result, true
	}

	if q.ForcedTopic == "" && q.MemoryTopic != "" {
		r.debug("retrying with remembered topic", map[string]interface{}{
			"topic": q.MemoryTopic,
		})
		if result := r.retrieveOnce(q.MemoryTopic+" "+q.Text, q.MemoryTopic); result != nil {
			return result, true
		}
	}

	return nil, false
}

func (r *Retriever) retrieveOnce(text, priorTopic string) *RetrievalResult {
	tokens := r.lexicon.Expand(r.lexicon.Meaningful(Tokenize(text)))
	if len(tokens) == 0 {
		return nil
	}

	// Topic bias reorders candidates so the remembered topic is scored
	// first; items of other topics stay in. With a stable sort this means
	// the bias only decides ties, it never excludes a better cross-topic
	// answer.
	candidates := r.kb.Items()
	if priorTopic != "" {
		reordered := make([]KnowledgeItem, 0, len(candidates))
		for _, item := range candidates {
			if item.Topic == priorTopic {
				reordered = append(reordered, item)
			}
		}
		for _, item := range candidates {
			if item.Topic != priorTopic {
				reordered = append(reordered, item)
			}
		}
		candidates = reordered
	}

	ranked := make([]ScoredItem, 0, len(candidates))
	for _, item := range candidates {
		score := r.scorer(item, tokens)
		if score > r.config.ScoreFloor {
			ranked = append(ranked, ScoredItem{Item: item, Score: score})
		}
	}

	if len(ranked) == 0 {
		return nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > r.config.TopK {
		ranked = ranked[:r.config.TopK]
	}

	result := &RetrievalResult{
		Context:       buildContext(ranked),
		DetectedTopic: majorityTopic(ranked),
		Ranked:        ranked,
	}

	r.debug("retrieval complete", map[string]interface{}{
		"survivors": len(ranked),
		"topic":     result.DetectedTopic,
		"top_score": ranked[0].Score,
	})

	return result
}

// buildContext concatenates the survivors as "<title>: <content>" lines in
// ranked order. This is the grounding block handed to the model.
func buildContext(ranked []ScoredItem) string {
	var b strings.Builder
	for i, r := range ranked {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Item.Title)
		b.WriteString(": ")
		b.WriteString(r.Item.Content)
	}
	return b.String()
}

// majorityTopic picks the most frequent topic among the ranked survivors.
// Ties go to whichever topic appears first in ranked order.
func majorityTopic(ranked []ScoredItem) string {
	counts := make(map[string]int, len(ranked))
	for _, r := range ranked {
		counts[r.Item.Topic]++
	}

	best := ""
	bestCount := 0
	for _, r := range ranked {
		if counts[r.Item.Topic] > bestCount {
			best = r.Item.Topic
			bestCount = counts[r.Item.Topic]
		}
	}
	return best
}

func (r *Retriever) debug(message string, details map[string]interface{}) {
	if r.logger != nil {
		r.logger.Debug("rag", message, details)
	}
}
