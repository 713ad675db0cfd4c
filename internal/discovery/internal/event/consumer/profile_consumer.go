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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/event"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// ProfileEventConsumer 同步候选人资料到数据库、缓存和向量索引
type ProfileEventConsumer struct {
	svc      service.ProfileService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewProfileEventConsumer(svc service.ProfileService, q mq.MQ) (*ProfileEventConsumer, error) {
	const groupID = "discovery-candidate"
	consumer, err := q.Consumer(event.CandidateProfileEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ProfileEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ProfileEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费候选人资料事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *ProfileEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.CandidateProfileEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	switch evt.Action {
	case event.ActionUpsert:
		err = c.svc.Sync(ctx, evt.Candidate.ToDomain())
	case event.ActionDelete:
		err = c.svc.Remove(ctx, evt.Candidate.ID)
	default:
		err = fmt.Errorf("未知的操作 %q", evt.Action)
	}
	if err != nil {
		return fmt.Errorf("同步候选人 %s 失败: %w", evt.Candidate.ID, err)
	}
	return nil
}

func (c *ProfileEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
