// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *elastic.Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client, err := elastic.NewClient(
		elastic.SetURL(srv.URL),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	require.NoError(t, err)
	return client
}

func TestVectorElasticDAO_Search(t *testing.T) {
	var (
		path string
		body map[string]any
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"took": 1,
			"timed_out": false,
			"hits": {
				"total": {"value": 2, "relation": "eq"},
				"max_score": 1.92,
				"hits": [
					{"_index": "candidate_vectors", "_id": "cv:12", "_score": 1.92,
					 "_source": {"id": "12", "namespace": "cv", "metadata": {"name": "Nino Beridze"}}},
					{"_index": "candidate_vectors", "_id": "cv:7", "_score": 1.4,
					 "_source": {"id": "7", "namespace": "cv", "metadata": {}}}
				]
			}
		}`))
	})
	d := NewVectorElasticDAO(client, "candidate_vectors", "")
	docs, err := d.Search(context.Background(), "cv", []float32{0.1, 0.2}, 10)
	require.NoError(t, err)
	assert.Equal(t, "/candidate_vectors/_search", path)
	assert.Equal(t, float64(10), body["size"])
	require.Len(t, docs, 2)
	assert.Equal(t, "12", docs[0].ID)
	assert.Equal(t, "Nino Beridze", docs[0].Metadata["name"])
	assert.InDelta(t, 1.92, docs[0].Score, 1e-9)

	query, ok := body["query"].(map[string]any)
	require.True(t, ok)
	scriptScore, ok := query["script_score"].(map[string]any)
	require.True(t, ok)
	script, ok := scriptScore["script"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, cosineScript, script["source"])
}

func TestVectorElasticDAO_Delete_NotFound(t *testing.T) {
	var method, path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"_index": "candidate_vectors", "_id": "form:form_1", "result": "not_found"}`))
	})
	d := NewVectorElasticDAO(client, "candidate_vectors", "")
	err := d.Delete(context.Background(), "form", "form_1")
	assert.NoError(t, err)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/candidate_vectors/_doc/form:form_1", path)
}
