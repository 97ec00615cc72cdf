package tools

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/router"
	"hotel-assistant/internal/sqlquery"
	"hotel-assistant/pkg/llmprovider"
	pkgLog "hotel-assistant/pkg/log"
)

var (
	leadingStmtRe = regexp.MustCompile(`(?i)^(SELECT|WITH)\b`)
	selectRe      = regexp.MustCompile(`(?i)\bSELECT\b`)
)

// StructuredQueryConfig tunes the SQL executor.
type StructuredQueryConfig struct {
	Persona agent.Persona
	// Dialect is the SQL flavour named in the prompt, e.g. "PostgreSQL".
	Dialect           string
	MaxRows           int
	Location          *time.Location
	GenerationTimeout time.Duration
}

// StructuredQueryTool answers questions about rooms and bookings by
// generating SQL, running it read-only and summarising the rows.
type StructuredQueryTool struct {
	llm  llmprovider.Generator
	exec sqlquery.Executor
	l    pkgLog.Logger
	cfg  StructuredQueryConfig
}

// NewStructuredQueryTool creates the structured query executor.
func NewStructuredQueryTool(llm llmprovider.Generator, exec sqlquery.Executor, l pkgLog.Logger, cfg StructuredQueryConfig) *StructuredQueryTool {
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = DefaultMaxRows
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultGenerationTimeout
	}
	if cfg.Dialect == "" {
		cfg.Dialect = "PostgreSQL"
	}
	return &StructuredQueryTool{llm: llm, exec: exec, l: l, cfg: cfg}
}

func (t *StructuredQueryTool) Intent() router.Intent {
	return router.IntentStructuredQuery
}

func (t *StructuredQueryTool) Execute(ctx context.Context, in agent.Input) (agent.Output, error) {
	today := nowOf(in).In(t.cfg.Location).Format("2006-01-02 (Monday)")
	prompt := fmt.Sprintf(PromptSQL, orNone(in.Summary), t.cfg.Dialect, today, in.Utterance)

	raw, err := t.generate(ctx, prompt, sqlTemperature, sqlMaxTokens)
	if err != nil {
		t.l.Warnf(ctx, "%s: generate sql: %v", LogPrefixStructuredQuery, err)
		return agent.Output{Reply: agent.MsgCouldNotRetrieve}, nil
	}

	query := CleanSQL(raw)
	t.l.Infof(ctx, "%s: generated query: %s", LogPrefixStructuredQuery, query)

	res, err := t.exec.Execute(ctx, query)
	if err != nil {
		t.l.Warnf(ctx, "%s: execute: %v", LogPrefixStructuredQuery, err)
		return agent.Output{Reply: agent.MsgCouldNotRetrieve}, nil
	}
	if res.Empty() {
		return agent.Output{Reply: agent.MsgNoDataFound}, nil
	}

	rows := FormatRows(res, t.cfg.MaxRows)
	answer, err := t.generate(ctx, fmt.Sprintf(PromptSQLAnswer,
		t.cfg.Persona.AssistantName, t.cfg.Persona.HotelName, t.cfg.Persona.Currency, in.Utterance, rows),
		answerTemperature, answerMaxTokens)
	if err != nil || answer == "" {
		t.l.Warnf(ctx, "%s: summarise rows: %v", LogPrefixStructuredQuery, err)
		return agent.Output{Reply: MsgRowsPreface + rows}, nil
	}
	return agent.Output{Reply: answer}, nil
}

func (t *StructuredQueryTool) generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.GenerationTimeout)
	defer cancel()
	resp, err := t.llm.GenerateContent(ctx, llmprovider.UserPrompt("", prompt, temperature, maxTokens))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// CleanSQL strips markdown fences and a "Query:" label, then keeps one
// statement. A leading SELECT or WITH starts it; otherwise it starts at the
// first SELECT. It ends at the first semicolon outside quotes, which is kept.
func CleanSQL(raw string) string {
	cleaned := strings.NewReplacer("```sql", "", "```SQL", "", "```", "", "Query:", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)

	if !leadingStmtRe.MatchString(cleaned) {
		if loc := selectRe.FindStringIndex(cleaned); loc != nil {
			cleaned = cleaned[loc[0]:]
		}
	}
	if end := statementEnd(cleaned); end >= 0 {
		cleaned = cleaned[:end+1]
	}
	return strings.TrimSpace(cleaned)
}

// statementEnd returns the index of the first ';' that is not inside a
// single-quoted literal or a double-quoted identifier, or -1.
func statementEnd(q string) int {
	var quote byte
	for i := 0; i < len(q); i++ {
		c := q[i]
		switch {
		case quote != 0:
			if c == quote {
				// A doubled quote is an escaped quote inside the literal.
				if i+1 < len(q) && q[i+1] == quote {
					i++
					continue
				}
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ';':
			return i
		}
	}
	return -1
}

// FormatRows renders a result as pipe-separated lines, keeping at most
// maxRows and saying so when rows were dropped.
func FormatRows(res sqlquery.Result, maxRows int) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(res.Columns, " | "))

	shown := len(res.Rows)
	if maxRows > 0 && shown > maxRows {
		shown = maxRows
	}
	for _, row := range res.Rows[:shown] {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(row, " | "))
	}
	if shown < len(res.Rows) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(RowsTruncatedFmt, shown, len(res.Rows)))
	}
	return sb.String()
}

func nowOf(in agent.Input) time.Time {
	if in.Now.IsZero() {
		return time.Now()
	}
	return in.Now
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
