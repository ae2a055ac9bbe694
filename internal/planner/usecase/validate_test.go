package usecase

import (
	"testing"

	"github.com/jdev86/daily-task-app/internal/planner"
)

func kindOf(t *testing.T, err error) planner.ErrorKind {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	return planner.Classify(err).Kind
}

func TestValidateScheduleResponse_RoundTrip(t *testing.T) {
	got, err := validateScheduleResponse(`{"schedule":[{"task":"A","time":"09:00","reason":"r"}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Task != "A" || got[0].Time != "9:00 AM" || got[0].Reason != "r" {
		t.Errorf("unexpected entry: %+v", got[0])
	}
	if got[0].minutes != 9*60 {
		t.Errorf("expected sort key 540, got %d", got[0].minutes)
	}
}

func TestValidateScheduleResponse_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"schedule\":[{\"task\":\"A\",\"time\":\"08:30\",\"reason\":\"r\"}]}\n```"
	got, err := validateScheduleResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Time != "8:30 AM" {
		t.Errorf("unexpected time: %s", got[0].Time)
	}
}

func TestValidateScheduleResponse_EmptyInput(t *testing.T) {
	if kind := kindOf(t, errOf(validateScheduleResponse(""))); kind != planner.KindNoResponse {
		t.Errorf("expected NO_RESPONSE, got %s", kind)
	}
	if kind := kindOf(t, errOf(validateScheduleResponse("  \n\t"))); kind != planner.KindNoResponse {
		t.Errorf("expected NO_RESPONSE for whitespace, got %s", kind)
	}
}

func TestValidateScheduleResponse_NotJSON(t *testing.T) {
	if kind := kindOf(t, errOf(validateScheduleResponse("sorry, I cannot help with that"))); kind != planner.KindParseError {
		t.Errorf("expected PARSE_ERROR, got %s", kind)
	}
}

func TestValidateScheduleResponse_MissingSchedule(t *testing.T) {
	if kind := kindOf(t, errOf(validateScheduleResponse(`{"plan":[]}`))); kind != planner.KindInvalidFormat {
		t.Errorf("expected INVALID_FORMAT for missing schedule, got %s", kind)
	}
	// Valid JSON but not an object at all.
	if kind := kindOf(t, errOf(validateScheduleResponse(`[1,2,3]`))); kind != planner.KindInvalidFormat {
		t.Errorf("expected INVALID_FORMAT for array root, got %s", kind)
	}
	// schedule present but wrong type.
	if kind := kindOf(t, errOf(validateScheduleResponse(`{"schedule":"busy day"}`))); kind != planner.KindInvalidFormat {
		t.Errorf("expected INVALID_FORMAT for mis-typed schedule, got %s", kind)
	}
	// schedule present but null must not pass as an empty schedule.
	got, err := validateScheduleResponse(`{"schedule":null}`)
	if kind := kindOf(t, err); kind != planner.KindInvalidFormat {
		t.Errorf("expected INVALID_FORMAT for null schedule, got %s", kind)
	}
	if got != nil {
		t.Errorf("expected no schedule for null field, got %+v", got)
	}
}

func TestValidateScheduleResponse_TimeFormats(t *testing.T) {
	cases := []struct {
		time    string
		wantErr bool
		want    string
	}{
		{"09:00", false, "9:00 AM"},
		{"9:00", false, "9:00 AM"}, // missing leading zero is accepted
		{"00:00", false, "12:00 AM"},
		{"12:00", false, "12:00 PM"},
		{"23:59", false, "11:59 PM"},
		{"13:05", false, "1:05 PM"},
		{"24:15", true, ""},
		{"25:00", true, ""},
		{"10:60", true, ""},
		{"100:00", true, ""},
		{"noon", true, ""},
	}

	for _, tc := range cases {
		raw := `{"schedule":[{"task":"A","time":"` + tc.time + `","reason":"r"}]}`
		got, err := validateScheduleResponse(raw)

		if tc.wantErr {
			if kind := kindOf(t, err); kind != planner.KindInvalidFormat {
				t.Errorf("time %q: expected INVALID_FORMAT, got %s", tc.time, kind)
			}
			if got != nil {
				t.Errorf("time %q: expected no partial result, got %+v", tc.time, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("time %q: unexpected error: %v", tc.time, err)
			continue
		}
		if got[0].Time != tc.want {
			t.Errorf("time %q: got %q, want %q", tc.time, got[0].Time, tc.want)
		}
	}
}

func TestValidateScheduleResponse_MissingFieldAbortsBatch(t *testing.T) {
	raw := `{"schedule":[
		{"task":"A","time":"09:00","reason":"fine"},
		{"task":"B","time":"10:00","reason":""}
	]}`
	got, err := validateScheduleResponse(raw)
	if kind := kindOf(t, err); kind != planner.KindInvalidFormat {
		t.Errorf("expected INVALID_FORMAT, got %s", kind)
	}
	if got != nil {
		t.Errorf("expected the whole batch rejected, got %+v", got)
	}
}

func TestValidateScheduleResponse_StableSortOnTies(t *testing.T) {
	raw := `{"schedule":[
		{"task":"first","time":"09:00","reason":"r"},
		{"task":"second","time":"09:00","reason":"r"},
		{"task":"earlier","time":"08:00","reason":"r"}
	]}`
	got, err := validateScheduleResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Task != "earlier" || got[1].Task != "first" || got[2].Task != "second" {
		t.Errorf("ties must keep response order: %+v", got)
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"Here is your schedule: {\"a\":1} enjoy!", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"no json here", "no json here"},
	}
	for _, tc := range cases {
		if got := sanitizeJSONResponse(tc.in); got != tc.want {
			t.Errorf("sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// errOf drops the value so error-only helpers can be chained.
func errOf(_ []validatedEntry, err error) error { return err }
