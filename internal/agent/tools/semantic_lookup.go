package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/knowledge"
	"hotel-assistant/internal/router"
	"hotel-assistant/pkg/llmprovider"
	pkgLog "hotel-assistant/pkg/log"
)

// boostTerms move matching passages to the front when the question mentions one.
var boostTerms = []string{"eco", "green", "environment", "sustainab", "organic"}

// SemanticLookupConfig tunes retrieval and synthesis.
type SemanticLookupConfig struct {
	Persona           agent.Persona
	Candidates        int
	TopK              int
	MinPassageLength  int
	LinkTable         []LinkCategory
	RetrievalTimeout  time.Duration
	GenerationTimeout time.Duration
}

// SemanticLookupTool answers policy and amenity questions from the vector index.
type SemanticLookupTool struct {
	searcher knowledge.Searcher
	llm      llmprovider.Generator
	l        pkgLog.Logger
	cfg      SemanticLookupConfig
}

// NewSemanticLookupTool creates the semantic retrieval executor.
func NewSemanticLookupTool(searcher knowledge.Searcher, llm llmprovider.Generator, l pkgLog.Logger, cfg SemanticLookupConfig) *SemanticLookupTool {
	if cfg.Candidates <= 0 {
		cfg.Candidates = DefaultCandidates
	}
	if cfg.Candidates < MinCandidates {
		cfg.Candidates = MinCandidates
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.MinPassageLength <= 0 {
		cfg.MinPassageLength = DefaultMinPassageLength
	}
	if cfg.LinkTable == nil {
		cfg.LinkTable = DefaultLinkTable
	}
	if cfg.RetrievalTimeout <= 0 {
		cfg.RetrievalTimeout = DefaultRetrievalTimeout
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultGenerationTimeout
	}
	return &SemanticLookupTool{searcher: searcher, llm: llm, l: l, cfg: cfg}
}

func (t *SemanticLookupTool) Intent() router.Intent {
	return router.IntentSemanticLookup
}

func (t *SemanticLookupTool) Execute(ctx context.Context, in agent.Input) (agent.Output, error) {
	sctx, cancel := context.WithTimeout(ctx, t.cfg.RetrievalTimeout)
	passages, err := t.searcher.Search(sctx, in.Utterance, t.cfg.Candidates)
	cancel()
	if err != nil {
		t.l.Warnf(ctx, "%s: search: %v", LogPrefixSemanticLookup, err)
		return agent.Output{Reply: agent.MsgCouldNotRetrieve}, nil
	}
	if len(passages) == 0 {
		return agent.Output{Reply: agent.MsgNothingRelevant}, nil
	}
	if allShort(passages, t.cfg.MinPassageLength) {
		return agent.Output{Reply: agent.MsgRephrase}, nil
	}

	passages = Dedup(passages)
	passages = Boost(in.Utterance, passages)
	if len(passages) > t.cfg.TopK {
		passages = passages[:t.cfg.TopK]
	}

	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}
	prompt := fmt.Sprintf(PromptSemanticAnswer, t.cfg.Persona.AssistantName, t.cfg.Persona.HotelName,
		strings.Join(texts, "\n\n"), in.Utterance)

	gctx, cancel := context.WithTimeout(ctx, t.cfg.GenerationTimeout)
	defer cancel()
	resp, err := t.llm.GenerateContent(gctx, llmprovider.UserPrompt("", prompt, answerTemperature, answerMaxTokens))
	if err != nil {
		t.l.Warnf(ctx, "%s: synthesise: %v", LogPrefixSemanticLookup, err)
		return agent.Output{Reply: agent.MsgCouldNotRetrieve}, nil
	}
	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return agent.Output{Reply: agent.MsgCouldNotRetrieve}, nil
	}

	if link, ok := SourceLink(t.cfg.LinkTable, passages); ok {
		answer += "\n\n" + link
	}
	return agent.Output{Reply: answer}, nil
}

func allShort(passages []knowledge.Passage, min int) bool {
	for _, p := range passages {
		if utf8.RuneCountInString(strings.TrimSpace(p.Text)) >= min {
			return false
		}
	}
	return true
}

// Dedup drops passages whose first characters repeat an earlier passage.
// Order is kept and the first occurrence wins.
func Dedup(passages []knowledge.Passage) []knowledge.Passage {
	seen := make(map[string]struct{}, len(passages))
	out := make([]knowledge.Passage, 0, len(passages))
	for _, p := range passages {
		key := p.Text
		if r := []rune(key); len(r) > dedupRunes {
			key = string(r[:dedupRunes])
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Boost stable-sorts passages mentioning a sustainability term to the front
// when the question mentions one. Nothing is dropped.
func Boost(question string, passages []knowledge.Passage) []knowledge.Passage {
	if !containsAny(question, boostTerms) {
		return passages
	}
	out := make([]knowledge.Passage, len(passages))
	copy(out, passages)
	sort.SliceStable(out, func(i, j int) bool {
		return containsAny(out[i].Text, boostTerms) && !containsAny(out[j].Text, boostTerms)
	})
	return out
}

func containsAny(text string, terms []string) bool {
	text = strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
