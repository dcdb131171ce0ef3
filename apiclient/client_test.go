package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Method string `json:"method"`
	Token  string `json:"token"`
	Body   string `json:"body"`
}

func newEchoServer(t *testing.T, setCookie bool) (*httptest.Server, *int32) {
	t.Helper()
	var csrfCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/csrf/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&csrfCalls, 1)
		if setCookie {
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "cookie-token", Path: "/"})
		}
		json.NewEncoder(w).Encode(map[string]string{"csrfToken": "issued-token"})
	})
	mux.HandleFunc("/api/echo/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(echo{Method: r.Method, Token: r.Header.Get(CSRFHeaderName), Body: string(body)})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &csrfCalls
}

func TestClient_GetDoesNotAttachToken(t *testing.T) {
	srv, csrfCalls := newEchoServer(t, false)
	client, err := New(srv.URL + "/api")
	require.NoError(t, err)

	var got echo
	require.NoError(t, client.Get(context.Background(), "/echo/", &got))

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Empty(t, got.Token)
	assert.Equal(t, int32(0), atomic.LoadInt32(csrfCalls))
}

func TestClient_MutatingRequestsFetchAndCacheToken(t *testing.T) {
	srv, csrfCalls := newEchoServer(t, false)
	client, err := New(srv.URL + "/api")
	require.NoError(t, err)
	ctx := context.Background()

	var got echo
	require.NoError(t, client.Post(ctx, "/echo/", map[string]int{"id": 7}, &got))
	assert.Equal(t, "issued-token", got.Token)
	assert.JSONEq(t, `{"id":7}`, got.Body)

	require.NoError(t, client.Patch(ctx, "/echo/", map[string]int{"quantity": 2}, &got))
	assert.Equal(t, http.MethodPatch, got.Method)
	assert.Equal(t, "issued-token", got.Token)

	require.NoError(t, client.Put(ctx, "/echo/", nil, &got))
	assert.Equal(t, "issued-token", got.Token)

	assert.Equal(t, int32(1), atomic.LoadInt32(csrfCalls))
}

func TestClient_PrefersCookieToken(t *testing.T) {
	srv, csrfCalls := newEchoServer(t, true)
	client, err := New(srv.URL + "/api")
	require.NoError(t, err)

	var got echo
	require.NoError(t, client.Post(context.Background(), "/echo/", nil, &got))
	assert.Equal(t, "cookie-token", got.Token)

	require.NoError(t, client.Post(context.Background(), "/echo/", nil, &got))
	assert.Equal(t, "cookie-token", got.Token)
	assert.Equal(t, int32(1), atomic.LoadInt32(csrfCalls))
}

func TestClient_TokenFailureStillSendsRequest(t *testing.T) {
	var sawToken atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/api/csrf/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/items/", func(w http.ResponseWriter, r *http.Request) {
		sawToken.Store(r.Header.Get(CSRFHeaderName))
		http.Error(w, "CSRF token missing", http.StatusForbidden)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, err := New(srv.URL + "/api")
	require.NoError(t, err)

	err = client.Post(context.Background(), "/items/", map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, StatusOf(err))
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "CSRF token missing")
	assert.Equal(t, "", sawToken.Load())
}

func TestClient_ErrorEmbedsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Category not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	err = client.Get(context.Background(), "/categories/9/", nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Category not found", apiErr.Body)
	assert.Equal(t, "GET /categories/9/: status 404: Category not found", err.Error())
}

func TestClient_TransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := New(url)
	require.NoError(t, err)

	err = client.Get(context.Background(), "/categories/", nil)
	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
	assert.True(t, strings.HasPrefix(err.Error(), "GET /categories/"))
}

func TestClient_DeleteAcceptsNoContent(t *testing.T) {
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/csrf/" {
			json.NewEncoder(w).Encode(map[string]string{"csrfToken": "t"})
			return
		}
		method = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	require.NoError(t, client.Delete(context.Background(), "/menu-items/3/"))
	assert.Equal(t, http.MethodDelete, method)
}

func TestClient_PostFormData(t *testing.T) {
	type received struct {
		Name        string
		FileName    string
		ContentType string
		Content     string
		Token       string
	}
	var got received

	mux := http.NewServeMux()
	mux.HandleFunc("/csrf/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"csrfToken": "form-token"})
	})
	mux.HandleFunc("/menu-items/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		got = received{
			Name:        r.FormValue("name_uz"),
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     string(content),
			Token:       r.Header.Get(CSRFHeaderName),
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int{"id": 11})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	form := NewForm().Set("name_uz", "Osh").AddFile(File{
		FieldName:   "image",
		FileName:    "osh.png",
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	})

	var created struct {
		ID int `json:"id"`
	}
	require.NoError(t, client.PostFormData(context.Background(), "/menu-items/", form, &created))

	assert.Equal(t, 11, created.ID)
	assert.Equal(t, received{
		Name:        "Osh",
		FileName:    "osh.png",
		ContentType: "image/png",
		Content:     "png-bytes",
		Token:       "form-token",
	}, got)
}

func TestClient_GetListAcceptsBothShapes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bare/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1},{"id":2}]`))
	})
	mux.HandleFunc("/paged/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":1,"results":[{"id":3}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	type item struct {
		ID int `json:"id"`
	}

	var bare []item
	require.NoError(t, client.GetList(context.Background(), "/bare/", &bare))
	assert.Equal(t, []item{{1}, {2}}, bare)

	var paged []item
	require.NoError(t, client.GetList(context.Background(), "/paged/", &paged))
	assert.Equal(t, []item{{3}}, paged)
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("/api")
	assert.Error(t, err)
}
