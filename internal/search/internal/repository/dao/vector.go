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
	"fmt"
	"time"

	"github.com/olivere/elastic/v7"
)

const cosineScript = "cosineSimilarity(params.query_vector, 'vector') + 1.0"

type VectorDoc struct {
	ID        string            `json:"id"`
	Namespace string            `json:"namespace"`
	Vector    []float32         `json:"vector"`
	Metadata  map[string]string `json:"metadata"`
	Utime     int64             `json:"utime"`
}

type ScoredDoc struct {
	VectorDoc
	// 原始的 cosine + 1，范围 [0,2]
	Score float64
}

//go:generate mockgen -source=./vector.go -destination=../mocks/vector.mock.go -package=daomocks VectorDAO
type VectorDAO interface {
	Upsert(ctx context.Context, doc VectorDoc) error
	Search(ctx context.Context, namespace string, vector []float32, topK int) ([]ScoredDoc, error)
	Delete(ctx context.Context, namespace, id string) error
}

type VectorElasticDAO struct {
	client *elastic.Client
	index  string
	// 写入之后是否等待刷新，测试的时候用 wait_for
	refresh string
}

func NewVectorElasticDAO(client *elastic.Client, index, refresh string) *VectorElasticDAO {
	return &VectorElasticDAO{
		client:  client,
		index:   index,
		refresh: refresh,
	}
}

func (v *VectorElasticDAO) Upsert(ctx context.Context, doc VectorDoc) error {
	doc.Utime = time.Now().UnixMilli()
	svc := v.client.Index().
		Index(v.index).
		Id(docID(doc.Namespace, doc.ID)).
		BodyJson(doc)
	if v.refresh != "" {
		svc = svc.Refresh(v.refresh)
	}
	_, err := svc.Do(ctx)
	return err
}

func (v *VectorElasticDAO) Search(ctx context.Context, namespace string, vector []float32, topK int) ([]ScoredDoc, error) {
	filter := elastic.NewBoolQuery().Filter(elastic.NewTermQuery("namespace", namespace))
	script := elastic.NewScript(cosineScript).Param("query_vector", vector)
	resp, err := v.client.Search(v.index).
		Query(elastic.NewScriptScoreQuery(filter, script)).
		Size(topK).
		FetchSourceContext(elastic.NewFetchSourceContext(true).Exclude("vector")).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]ScoredDoc, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc VectorDoc
		err = json.Unmarshal(hit.Source, &doc)
		if err != nil {
			return nil, fmt.Errorf("解析向量文档失败 %s: %w", hit.Id, err)
		}
		var score float64
		if hit.Score != nil {
			score = *hit.Score
		}
		res = append(res, ScoredDoc{VectorDoc: doc, Score: score})
	}
	return res, nil
}

func (v *VectorElasticDAO) Delete(ctx context.Context, namespace, id string) error {
	svc := v.client.Delete().
		Index(v.index).
		Id(docID(namespace, id))
	if v.refresh != "" {
		svc = svc.Refresh(v.refresh)
	}
	_, err := svc.Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}

func docID(namespace, id string) string {
	return namespace + ":" + id
}
