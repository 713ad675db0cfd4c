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

package producer

import (
	"context"
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/event"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/mqx"
)

//go:generate mockgen -source=./unlock_event_producer.go -package=evtmocks -destination=../mocks/unlock.mock.go UnlockEventProducer
type UnlockEventProducer interface {
	Produce(ctx context.Context, evt event.CandidateUnlockedEvent) error
}

func NewUnlockEventProducer(q mq.MQ) (UnlockEventProducer, error) {
	// 同一个用户的解锁事件保持顺序
	return mqx.NewGeneralProducer[event.CandidateUnlockedEvent](q, event.CandidateUnlockedEventName,
		mqx.WithKey(func(evt event.CandidateUnlockedEvent) string {
			return strconv.FormatInt(evt.Uid, 10)
		}))
}
