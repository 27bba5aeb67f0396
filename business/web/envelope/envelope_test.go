package envelope_test

import (
	"encoding/json"
	"testing"

	"github.com/ardanlabs/solsign/business/web/envelope"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Envelope(t *testing.T) {
	type payload struct {
		Valid bool `json:"valid"`
	}

	type table struct {
		name string
		env  envelope.Envelope
		exp  string
	}

	tt := []table{
		{"success", envelope.Success(payload{Valid: true}), `{"success":true,"data":{"valid":true}}`},
		{"failure", envelope.Failure("Missing required fields"), `{"success":false,"error":"Missing required fields"}`},
		{"empty failure", envelope.Failure(""), `{"success":false,"error":""}`},
	}

	t.Log("Given the need to keep data and error apart.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen marshaling a %s.", testID, tst.name)
			{
				b, err := json.Marshal(tst.env)
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to marshal: %s", failed, testID, err)
				}

				if string(b) != tst.exp {
					t.Logf("\t\tgot: %s", b)
					t.Logf("\t\texp: %s", tst.exp)
					t.Fatalf("\t%s\tTest %d:\tShould get the right JSON.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get the right JSON.", success, testID)
			}
		}
	}
}

func Test_Decode(t *testing.T) {
	t.Log("Given the need to read envelopes as a client.")
	{
		var p struct {
			Status string `json:"status"`
		}
		if err := envelope.Decode([]byte(`{"success":true,"data":{"status":"ok"}}`), &p); err != nil {
			t.Fatalf("\t%s\tShould decode a success: %s", failed, err)
		}
		if p.Status != "ok" {
			t.Fatalf("\t%s\tShould get the data back, got %q.", failed, p.Status)
		}
		t.Logf("\t%s\tShould decode a success.", success)

		err := envelope.Decode([]byte(`{"success":false,"error":"Amount must be greater than 0"}`), &p)
		if err == nil || err.Error() != "Amount must be greater than 0" {
			t.Fatalf("\t%s\tShould get the failure as an error: %v", failed, err)
		}
		t.Logf("\t%s\tShould get the failure as an error.", success)
	}
}
