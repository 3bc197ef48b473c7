package dto

import (
	"testing"
	"time"
)

func validRequest() CreateTeachingSessionRequest {
	return CreateTeachingSessionRequest{
		TeachingSessionDate:      time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		TeachingSessionSubject:   "Mathematics",
		TeachingSessionClass:     "Grade 5A",
		TeachingSessionTopic:     "Introduction to Fractions",
		TeachingSessionStartTime: "08:00",
		TeachingSessionEndTime:   "09:30",
	}
}

func TestParseTimesValid(t *testing.T) {
	req := validRequest()
	parsed, fieldErrors := req.ParseTimes()
	if fieldErrors != nil {
		t.Fatalf("unexpected field errors: %v", fieldErrors)
	}
	if got := parsed.Date.Format("2006-01-02"); got != req.TeachingSessionDate {
		t.Errorf("Date = %s, want %s", got, req.TeachingSessionDate)
	}
	if parsed.Start.MinutesOfDay() != 8*60 || parsed.End.MinutesOfDay() != 9*60+30 {
		t.Errorf("parsed times = %v / %v", parsed.Start, parsed.End)
	}
}

func TestParseTimesTodayAllowed(t *testing.T) {
	req := validRequest()
	req.TeachingSessionDate = time.Now().Format("2006-01-02")
	if _, fieldErrors := req.ParseTimes(); fieldErrors != nil {
		t.Fatalf("hari ini harus boleh: %v", fieldErrors)
	}
}

func TestParseTimesFieldErrors(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*CreateTeachingSessionRequest)
		wantField string
	}{
		{
			name:      "bad date format",
			mutate:    func(r *CreateTeachingSessionRequest) { r.TeachingSessionDate = "04-03-2024" },
			wantField: "teaching_session_date",
		},
		{
			name: "future date",
			mutate: func(r *CreateTeachingSessionRequest) {
				r.TeachingSessionDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
			},
			wantField: "teaching_session_date",
		},
		{
			name:      "bad start time",
			mutate:    func(r *CreateTeachingSessionRequest) { r.TeachingSessionStartTime = "8 pagi" },
			wantField: "teaching_session_start_time",
		},
		{
			name:      "bad end time",
			mutate:    func(r *CreateTeachingSessionRequest) { r.TeachingSessionEndTime = "25:00" },
			wantField: "teaching_session_end_time",
		},
		{
			name: "end before start",
			mutate: func(r *CreateTeachingSessionRequest) {
				r.TeachingSessionStartTime = "10:00"
				r.TeachingSessionEndTime = "09:00"
			},
			wantField: "teaching_session_end_time",
		},
		{
			name: "end equals start",
			mutate: func(r *CreateTeachingSessionRequest) {
				r.TeachingSessionStartTime = "10:00"
				r.TeachingSessionEndTime = "10:00"
			},
			wantField: "teaching_session_end_time",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, fieldErrors := req.ParseTimes()
			if fieldErrors == nil {
				t.Fatal("want field errors, got none")
			}
			if len(fieldErrors[tc.wantField]) == 0 {
				t.Errorf("want error on %q, got %v", tc.wantField, fieldErrors)
			}
		})
	}
}
