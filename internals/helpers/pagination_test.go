// file: internals/helpers/pagination_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPagination(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	// defends against zero/negative inputs
	p = BuildPagination(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()

	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})

	cases := []struct {
		url  string
		want Paging
	}{
		{"/", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"/?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"/?limit=50", Paging{Page: 1, PerPage: 50, Offset: 0, Limit: 50}},
		{"/?page=-1&per_page=0", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"/?per_page=9999", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, tc.want, got, "url %s", tc.url)
	}
}
