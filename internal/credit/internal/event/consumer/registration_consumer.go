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
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/event"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// RegistrationEventConsumer 用户注册后开通积分账户
type RegistrationEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRegistrationEventConsumer(svc service.Service, q mq.MQ) (*RegistrationEventConsumer, error) {
	const groupID = "credit-user"
	consumer, err := q.Consumer(event.UserRegistrationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &RegistrationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *RegistrationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费注册事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *RegistrationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.UserRegistrationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.Uid <= 0 {
		return fmt.Errorf("非法的用户 ID %d", evt.Uid)
	}
	acc, err := c.svc.OpenAccount(ctx, evt.Uid)
	if err != nil {
		return fmt.Errorf("开通积分账户失败 uid=%d: %w", evt.Uid, err)
	}
	c.logger.Info("开通积分账户",
		elog.Int64("uid", acc.Uid),
		elog.String("balance", acc.Balance.StringFixed(2)))
	return nil
}

func (c *RegistrationEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
