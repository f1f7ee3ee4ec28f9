package loans

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*fixture, *httptest.Server) {
	t.Helper()
	f := newFixture(t)
	r := chi.NewRouter()
	r.Route("/prestamos", NewHandler(f.service).Routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return f, srv
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func createBody(userID int64, bookIDs ...int64) string {
	ids := make([]string, len(bookIDs))
	for i, id := range bookIDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf(`{"startDate":%q,"dueDate":%q,"userId":%d,"bookIds":[%s]}`,
		Today(), Today().AddDays(7), userID, strings.Join(ids, ","))
}

func TestHandlerCreateStatusCodes(t *testing.T) {
	f, srv := newTestServer(t)
	userID := f.addUser(t, "Ana")
	heldID := f.addBook(t, "held")
	freeID := f.addBook(t, "free")

	resp := doJSON(t, http.MethodPost, srv.URL+"/prestamos/crear", createBody(userID, heldID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/prestamos/crear", createBody(99, freeID))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/prestamos/crear", createBody(userID, 777))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/prestamos/crear", createBody(userID, heldID))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Date validation failures fall through to the generic 500.
	body := fmt.Sprintf(`{"startDate":%q,"dueDate":%q,"userId":%d,"bookIds":[%d]}`,
		Today().AddDays(-3), Today().AddDays(7), userID, freeID)
	resp = doJSON(t, http.MethodPost, srv.URL+"/prestamos/crear", body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandlerListEmptyIsFriendly(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/prestamos/traer")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	buf := make([]byte, 128)
	n, _ := resp.Body.Read(buf)
	assert.Contains(t, string(buf[:n]), "no loans registered")
}

func TestHandlerGetEditDelete(t *testing.T) {
	f, srv := newTestServer(t)
	userID := f.addUser(t, "Ana")
	bookID := f.addBook(t, "X")

	resp := doJSON(t, http.MethodPost, srv.URL+"/prestamos/crear", createBody(userID, bookID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/prestamos/traer/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, srv.URL+"/prestamos/editar/1",
		fmt.Sprintf(`{"dueDate":%q}`, Today().AddDays(30)))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, srv.URL+"/prestamos/editar/55", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/prestamos/eliminar/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/prestamos/eliminar/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/prestamos/traer/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/prestamos/traer/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
