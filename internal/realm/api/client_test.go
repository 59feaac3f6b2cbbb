package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "karna", req["username"])

		fmt.Fprint(w, `{"token": "jwt-token"}`)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL}
	token, err := c.Login(context.Background(), "karna", "kavachkundal")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, "jwt-token", c.Token)
}

func TestClient_Login_ServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": "Invalid password"}`)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL}
	_, err := c.Login(context.Background(), "karna", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid password", err.Error())
}

func TestClient_Verify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["token"] == "good" {
			fmt.Fprint(w, `{"valid": true, "userId": 1}`)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"valid": false}`)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL}

	valid, err := c.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = c.Verify(context.Background(), "bad")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestClient_Nutrition(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/nutrition", r.URL.Path)
		fmt.Fprint(w, `{"name": "banana", "calories": 89, "protein": 1.1}`)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL}
	record, err := c.Nutrition(context.Background(), "banana")
	require.NoError(t, err)
	assert.Equal(t, "banana", record.Name)
	assert.Equal(t, 89.0, record.Calories)
	assert.Equal(t, 1.1, record.Protein)
}

func TestClient_Documents_BearerToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"documents": [{"id": "d1", "name": "scroll.txt", "uploadDate": "2/3/2026", "size": "1.0 KB"}]}`)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, Token: "jwt-token"}
	docs, err := c.Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "scroll.txt", docs[0].Name)
}

func TestClient_UploadDownloadDelete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/documents/upload":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "scroll.txt", r.FormValue("name"))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"document": {"id": "d1", "name": "scroll.txt"}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/documents/download/d1":
			fmt.Fprint(w, "contents")
		case r.Method == http.MethodDelete && r.URL.Path == "/api/documents/d1":
			fmt.Fprint(w, `{"deleted": true}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, Token: "jwt-token"}

	doc, err := c.UploadDocument(context.Background(), "scroll.txt", []byte("contents"))
	require.NoError(t, err)
	assert.Equal(t, "d1", doc.ID)

	content, err := c.DownloadDocument(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, []byte("contents"), content)

	require.NoError(t, c.DeleteDocument(context.Background(), "d1"))
}
