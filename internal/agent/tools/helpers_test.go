package tools_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/knowledge"
	"hotel-assistant/internal/sqlquery"
	"hotel-assistant/pkg/llmprovider"
)

// scriptedLLM answers each call with the next scripted reply. An empty
// script entry with err set fails that call.
type scriptedLLM struct {
	mu      sync.Mutex
	replies []scripted
	prompts []string
}

type scripted struct {
	text string
	err  error
}

func reply(text string) scripted { return scripted{text: text} }
func fail() scripted             { return scripted{err: errors.New("llm unavailable")} }

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prompt strings.Builder
	for _, m := range req.Messages {
		for _, p := range m.Parts {
			prompt.WriteString(p.Text)
		}
	}
	s.prompts = append(s.prompts, prompt.String())

	if len(s.replies) == 0 {
		return nil, errors.New("unexpected llm call")
	}
	next := s.replies[0]
	s.replies = s.replies[1:]
	if next.err != nil {
		return nil, next.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: next.text}}},
	}, nil
}

func (s *scriptedLLM) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

type stubExecutor struct {
	res   sqlquery.Result
	err   error
	query string
}

func (s *stubExecutor) Execute(ctx context.Context, query string) (sqlquery.Result, error) {
	s.query = query
	return s.res, s.err
}

type stubSearcher struct {
	passages []knowledge.Passage
	err      error
	k        int
}

func (s *stubSearcher) Search(ctx context.Context, text string, k int) ([]knowledge.Passage, error) {
	s.k = k
	return s.passages, s.err
}

type stubBookingUC struct {
	rooms     []booking.Room
	out       booking.SubmitOutput
	err       error
	submitted []booking.Request
}

func (s *stubBookingUC) ListRooms(ctx context.Context) ([]booking.Room, error) {
	return s.rooms, nil
}

func (s *stubBookingUC) Submit(ctx context.Context, input booking.SubmitInput) (booking.SubmitOutput, error) {
	s.submitted = append(s.submitted, input.Request)
	if s.err == nil {
		if err := booking.ValidateRequest(input.Request); err != nil {
			return booking.SubmitOutput{State: booking.StateCollectingDetails}, err
		}
	}
	return s.out, s.err
}

func (s *stubBookingUC) Detail(ctx context.Context, number string) (booking.Reservation, error) {
	return booking.Reservation{}, booking.ErrBookingNotFound
}
