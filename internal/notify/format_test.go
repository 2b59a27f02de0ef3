package notify

import "testing"

func TestFormatText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "medium default",
			req:  Request{Message: "Hello", Project: "demo", Urgency: UrgencyMedium},
			want: "⚠️ demo: \n\nHello",
		},
		{
			name: "high",
			req:  Request{Message: "deploy broke", Project: "api", Urgency: UrgencyHigh},
			want: "🚨 URGENT: api: \n\ndeploy broke",
		},
		{
			name: "low has no prefix",
			req:  Request{Message: "fyi", Project: "ops", Urgency: UrgencyLow},
			want: "ops: \n\nfyi",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatText(tt.req); got != tt.want {
				t.Fatalf("FormatText = %q, want %q", got, tt.want)
			}
		})
	}
}
