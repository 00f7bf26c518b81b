package impl

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"keygate/internal/domain/service"
)

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// randomString returns n characters drawn uniformly from the alphanumeric
// alphabet using crypto/rand. Used for verification codes and credential
// version stamps, both of which travel in plain text.
func randomString(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)

	alphabetLen := big.NewInt(int64(len(tokenAlphabet)))
	for range n {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", errors.Wrap(err, "read random")
		}
		sb.WriteByte(tokenAlphabet[idx.Int64()])
	}

	return sb.String(), nil
}

// usernameFromEmail derives a username for an auto-provisioned OAuth account:
// the email's local part plus a random suffix to dodge collisions.
func usernameFromEmail(email string) (string, error) {
	local, _, _ := strings.Cut(email, "@")
	suffix, err := randomString(4)
	if err != nil {
		return "", err
	}

	return local + "_" + suffix, nil
}

func verificationMail(to, code string) *service.Mail {
	return &service.Mail{
		To:      to,
		Subject: "Verify your email address",
		HTML: fmt.Sprintf(
			"<p>Your verification code is:</p><h2>%s</h2><p>It expires in 10 minutes.</p>",
			code),
	}
}

func resetMail(to, link string) *service.Mail {
	return &service.Mail{
		To:      to,
		Subject: "Reset your password",
		HTML: fmt.Sprintf(
			`<p>We received a request to reset your password.</p><p><a href="%s">Reset password</a></p><p>The link expires in 1 hour. If you did not request this, you can ignore this mail.</p>`,
			link),
	}
}
