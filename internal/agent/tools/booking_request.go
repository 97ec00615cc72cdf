package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/booking/notify"
	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/router"
	"hotel-assistant/pkg/datemath"
	"hotel-assistant/pkg/llmprovider"
	pkgLog "hotel-assistant/pkg/log"
)

var (
	cancelRe     = regexp.MustCompile(`(?i)^\s*(cancel|stop|never\s*mind|forget it|abort)\b`)
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// fieldLabels is the order and wording used when asking for missing details.
var fieldLabels = []struct {
	field string
	label string
}{
	{booking.FieldFirstName, "your first name"},
	{booking.FieldLastName, "your last name"},
	{booking.FieldEmail, "your email address"},
	{booking.FieldRoomID, "the room number"},
	{booking.FieldCheckIn, "your check-in date"},
	{booking.FieldCheckOut, "your check-out date"},
	{booking.FieldGuests, "the number of guests"},
}

// BookingRequestConfig tunes the booking conversation.
type BookingRequestConfig struct {
	Persona           agent.Persona
	Location          *time.Location
	GenerationTimeout time.Duration
}

// BookingRequestTool collects booking details over several turns and submits
// them through the booking use case once complete.
type BookingRequestTool struct {
	uc     booking.UseCase
	llm    llmprovider.Generator
	parser *datemath.Parser
	l      pkgLog.Logger
	cfg    BookingRequestConfig
}

// NewBookingRequestTool creates the booking executor.
func NewBookingRequestTool(uc booking.UseCase, llm llmprovider.Generator, l pkgLog.Logger, cfg BookingRequestConfig) *BookingRequestTool {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultGenerationTimeout
	}
	return &BookingRequestTool{
		uc:     uc,
		llm:    llm,
		parser: datemath.NewParserIn(cfg.Location),
		l:      l,
		cfg:    cfg,
	}
}

func (t *BookingRequestTool) Intent() router.Intent {
	return router.IntentBookingRequest
}

func (t *BookingRequestTool) Execute(ctx context.Context, in agent.Input) (agent.Output, error) {
	collecting := in.Mode == conversation.ModeCollectingDetails
	if collecting && IsCancel(in.Utterance) {
		return agent.Output{
			Reply:      MsgBookingCancelled,
			Transition: conversation.Transition{Mode: conversation.ModeIdle, ClearDraft: true},
		}, nil
	}

	draft := in.Draft
	var notes strings.Builder
	if !collecting {
		notes.WriteString(MsgBookingStart)
	}

	details, err := t.extract(ctx, in)
	if err != nil {
		t.l.Warnf(ctx, "%s: extract: %v", LogPrefixBookingRequest, err)
		notes.WriteString(MsgBookingExtractErr)
	} else {
		for _, bad := range t.merge(&draft, details, nowOf(in)) {
			notes.WriteString(fmt.Sprintf(MsgBookingBadDate, bad))
		}
	}

	req, missing := toRequest(draft)
	if len(missing) > 0 {
		reply := notes.String() + fmt.Sprintf(MsgBookingNeed, joinLabels(missing))
		if draft.RoomID == 0 {
			reply += t.roomList(ctx)
		}
		return collect(reply, draft), nil
	}

	return t.submit(ctx, draft, req), nil
}

func (t *BookingRequestTool) submit(ctx context.Context, draft conversation.BookingDraft, req booking.Request) agent.Output {
	out, err := t.uc.Submit(ctx, booking.SubmitInput{Request: req})
	switch {
	case errors.Is(err, booking.ErrInvalidDateRange):
		draft.CheckIn, draft.CheckOut = "", ""
		return collect(MsgBookingDateRange, draft)
	case errors.Is(err, booking.ErrCapacityExceeded):
		reply := fmt.Sprintf(MsgBookingCapacity, out.Room.ID, out.Room.Capacity, plural(out.Room.Capacity, "guest"))
		draft.RoomID, draft.Guests = 0, 0
		return collect(reply+t.roomList(ctx), draft)
	case errors.Is(err, booking.ErrRoomNotFound):
		reply := fmt.Sprintf(MsgBookingNoRoom, draft.RoomID)
		draft.RoomID = 0
		return collect(reply+t.roomList(ctx), draft)
	case err != nil:
		t.l.Errorf(ctx, "%s: submit: %v", LogPrefixBookingRequest, err)
		return collect(MsgBookingFailed, draft)
	}

	switch out.State {
	case booking.StateAccepted:
		t.l.Infof(ctx, "%s: accepted %s", LogPrefixBookingRequest, out.Reservation.BookingNumber)
		return t.cfg.Persona.Confirm(out)
	case booking.StateConflict:
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf(MsgBookingConflict, req.RoomID))
		for _, c := range out.Conflicts {
			sb.WriteString(fmt.Sprintf(MsgBookingConflictLn, c.BookingNumber,
				c.CheckIn.Format(booking.DateLayout), c.CheckOut.Format(booking.DateLayout)))
		}
		sb.WriteString(MsgBookingNewDates)
		draft.CheckIn, draft.CheckOut = "", ""
		return collect(sb.String(), draft)
	default:
		return collect(MsgBookingFailed, draft)
	}
}

func collect(reply string, draft conversation.BookingDraft) agent.Output {
	return agent.Output{
		Reply:      reply,
		Transition: conversation.Transition{Mode: conversation.ModeCollectingDetails, Draft: &draft},
	}
}

// extract asks the model for the booking fields present in the utterance.
func (t *BookingRequestTool) extract(ctx context.Context, in agent.Input) (map[string]interface{}, error) {
	known, _ := json.Marshal(in.Draft)
	prompt := fmt.Sprintf(PromptExtractBooking, nowOf(in).In(t.cfg.Location).Format("2006-01-02 (Monday)"), known, in.Utterance)

	ctx, cancel := context.WithTimeout(ctx, t.cfg.GenerationTimeout)
	defer cancel()
	resp, err := t.llm.GenerateContent(ctx, llmprovider.UserPrompt("", prompt, extractTemperature, extractMaxTokens))
	if err != nil {
		return nil, err
	}
	return ParseDetails(resp.Text())
}

// ParseDetails decodes the first JSON object in the model's output.
func ParseDetails(text string) (map[string]interface{}, error) {
	obj := jsonObjectRe.FindString(text)
	if obj == "" {
		return nil, fmt.Errorf("no JSON object in %q", text)
	}
	var details map[string]interface{}
	if err := json.Unmarshal([]byte(obj), &details); err != nil {
		return nil, fmt.Errorf("decode details: %w", err)
	}
	return details, nil
}

// merge copies non-empty extracted fields into draft and returns the date
// phrases that could not be normalised.
func (t *BookingRequestTool) merge(draft *conversation.BookingDraft, details map[string]interface{}, now time.Time) []string {
	setString(&draft.FirstName, details["first_name"])
	setString(&draft.LastName, details["last_name"])
	setString(&draft.Email, details["email"])
	setString(&draft.Phone, details["phone"])
	setString(&draft.SpecialRequests, details["special_requests"])
	setInt(&draft.RoomID, details["room_id"])
	setInt(&draft.Guests, details["guests"])

	var bad []string
	for _, d := range []struct {
		key string
		dst *string
	}{{"check_in", &draft.CheckIn}, {"check_out", &draft.CheckOut}} {
		phrase := asString(details[d.key])
		if phrase == "" {
			continue
		}
		day, err := t.parser.Normalize(phrase, now)
		if err != nil {
			bad = append(bad, phrase)
			continue
		}
		*d.dst = day
	}
	return bad
}

// toRequest converts a draft and lists the required fields still missing.
func toRequest(d conversation.BookingDraft) (booking.Request, []string) {
	req := booking.Request{
		FirstName:       strings.TrimSpace(d.FirstName),
		LastName:        strings.TrimSpace(d.LastName),
		Email:           strings.TrimSpace(d.Email),
		Phone:           strings.TrimSpace(d.Phone),
		RoomID:          d.RoomID,
		Guests:          d.Guests,
		SpecialRequests: strings.TrimSpace(d.SpecialRequests),
	}
	if in, err := booking.ParseDate(d.CheckIn); err == nil {
		req.CheckIn = in
	}
	if out, err := booking.ParseDate(d.CheckOut); err == nil {
		req.CheckOut = out
	}

	var missing *booking.MissingFieldsError
	if err := booking.ValidateRequest(req); errors.As(err, &missing) {
		return req, missing.Fields
	}
	return req, nil
}

func (t *BookingRequestTool) roomList(ctx context.Context) string {
	rooms, err := t.uc.ListRooms(ctx)
	if err != nil || len(rooms) == 0 {
		if err != nil {
			t.l.Warnf(ctx, "%s: list rooms: %v", LogPrefixBookingRequest, err)
		}
		return ""
	}
	var sb strings.Builder
	sb.WriteString(MsgBookingRoomsHead)
	for _, r := range rooms {
		sb.WriteString(fmt.Sprintf(MsgBookingRoomLine, r.ID, r.Type,
			t.cfg.Persona.Currency+notify.FormatAmount(r.Price), r.Capacity, plural(r.Capacity, "guest")))
	}
	return sb.String()
}

// IsCancel reports whether the guest wants to leave the booking flow.
func IsCancel(utterance string) bool {
	return cancelRe.MatchString(utterance)
}

func joinLabels(fields []string) string {
	var labels []string
	for _, fl := range fieldLabels {
		for _, f := range fields {
			if f == fl.field {
				labels = append(labels, fl.label)
			}
		}
	}
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + " and " + labels[len(labels)-1]
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func asString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

func setString(dst *string, v interface{}) {
	if s := asString(v); s != "" {
		*dst = s
	}
}

func setInt(dst *int, v interface{}) {
	switch x := v.(type) {
	case float64:
		if x > 0 {
			*dst = int(x)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil && n > 0 {
			*dst = n
		}
	}
}
