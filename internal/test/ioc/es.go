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

package testioc

import (
	"sync"
	"time"

	"github.com/olivere/elastic/v7"
)

var (
	es         *elastic.Client
	esInitOnce sync.Once
)

func InitES() *elastic.Client {
	esInitOnce.Do(func() {
		const timeout = 10 * time.Second
		client, err := elastic.NewClient(
			elastic.SetURL("http://127.0.0.1:9200"),
			elastic.SetSniff(false),
			elastic.SetHealthcheckTimeoutStartup(timeout))
		if err != nil {
			panic(err)
		}
		es = client
	})
	return es
}
