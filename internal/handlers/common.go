// common.go
//
// Shared request parsing helpers for the inspection service handlers.

package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseQueryList extracts a list-valued query parameter, supporting both
// repeated keys and comma-separated values (e.g. ?forms=a,b&forms=c).
func parseQueryList(c *fiber.Ctx, key string) []string {
	valueSet := make(map[string]struct{})

	args := c.Context().QueryArgs()
	for k, value := range args.All() {
		if string(k) != key {
			continue
		}
		for _, v := range strings.Split(string(value), ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				valueSet[v] = struct{}{}
			}
		}
	}

	if len(valueSet) == 0 {
		return nil
	}

	values := make([]string, 0, len(valueSet))
	for v := range valueSet {
		values = append(values, v)
	}
	return values
}

// userID reads the authenticated user id the identity middleware stored.
func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("userId").(string)
	return id
}
