package authware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type tokenExtractor func(c *fiber.Ctx) (string, error)

func extractToken(c *fiber.Ctx, extractors []tokenExtractor) (string, error) {
	var raw string
	var err error

	for _, extractor := range extractors {
		raw, err = extractor(c)
		if raw != "" && err == nil {
			break
		}
	}

	if raw == "" && err == nil {
		err = ErrMissingOrMalformed
	}

	return raw, err
}

func buildExtractors(tokenLookup string, authScheme string) []tokenExtractor {
	extractors := make([]tokenExtractor, 0)

	// header:Authorization,cookie:token,query:token
	rootParts := strings.Split(tokenLookup, ",")
	for _, rootPart := range rootParts {
		parts := strings.Split(strings.TrimSpace(rootPart), ":")
		if len(parts) != 2 {
			continue
		}

		for i, el := range parts {
			parts[i] = strings.TrimSpace(el)
		}

		switch parts[0] {
		case "header":
			extractors = append(extractors, tokenFromHeader(parts[1], authScheme))
		case "query":
			extractors = append(extractors, tokenFromQuery(parts[1]))
		case "cookie":
			extractors = append(extractors, tokenFromCookie(parts[1]))
		}
	}

	return extractors
}

// tokenFromHeader returns a function that extracts the token from the
// request header, enforcing the auth scheme prefix.
func tokenFromHeader(header string, authScheme string) tokenExtractor {
	scheme := strings.TrimSpace(authScheme)
	return func(c *fiber.Ctx) (string, error) {
		a := c.Get(header)
		l := len(scheme)
		if l == 0 {
			return strings.TrimSpace(a), nil
		}
		if len(a) > l+1 && strings.EqualFold(a[:l], scheme) && a[l] == ' ' {
			token := strings.TrimSpace(a[l+1:])
			if token != "" {
				return token, nil
			}
		}
		return "", ErrMissingOrMalformed
	}
}

// tokenFromQuery returns a function that extracts the token from the query string.
func tokenFromQuery(param string) tokenExtractor {
	return func(c *fiber.Ctx) (string, error) {
		token := c.Query(param)
		if token == "" {
			return "", ErrMissingOrMalformed
		}
		return token, nil
	}
}

// tokenFromCookie returns a function that extracts the token from a named cookie.
func tokenFromCookie(name string) tokenExtractor {
	return func(c *fiber.Ctx) (string, error) {
		token := c.Cookies(name)
		if token == "" {
			return "", ErrMissingOrMalformed
		}
		return token, nil
	}
}
