package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ardanlabs/solsign/business/web/errs"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Trusted(t *testing.T) {
	cause := errors.New("invalid length")

	t.Log("Given the need to carry an expected error to the caller.")
	{
		err := fmt.Errorf("handler: %w", errs.BadRequest("Error signing message", cause))

		te := errs.GetTrusted(err)
		if te == nil {
			t.Fatalf("\t%s\tShould find the trusted error.", failed)
		}
		t.Logf("\t%s\tShould find the trusted error.", success)

		if te.Status != http.StatusBadRequest {
			t.Fatalf("\t%s\tShould get a 400, got %d.", failed, te.Status)
		}
		if te.Error() != "Error signing message: invalid length" {
			t.Fatalf("\t%s\tShould get the prefixed message, got %q.", failed, te.Error())
		}
		t.Logf("\t%s\tShould get a 400 with the prefixed message.", success)

		if !errors.Is(err, cause) {
			t.Fatalf("\t%s\tShould still match the cause.", failed)
		}
		t.Logf("\t%s\tShould still match the cause.", success)

		if errs.GetTrusted(cause) != nil {
			t.Fatalf("\t%s\tShould not see a plain error as trusted.", failed)
		}
		t.Logf("\t%s\tShould not see a plain error as trusted.", success)
	}
}
