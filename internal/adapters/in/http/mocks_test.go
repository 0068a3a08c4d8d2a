package http

import (
	"context"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/identity"

	"github.com/stretchr/testify/mock"
)

type MockActorResolver struct{ mock.Mock }

func (m *MockActorResolver) Handle(ctx context.Context, query queries.ResolveActorQuery) (identity.Actor, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(identity.Actor), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockEditOrderHandler struct{ mock.Mock }

func (m *MockEditOrderHandler) Handle(ctx context.Context, cmd commands.EditOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockApproveOrderHandler struct{ mock.Mock }

func (m *MockApproveOrderHandler) Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRejectOrderHandler struct{ mock.Mock }

func (m *MockRejectOrderHandler) Handle(ctx context.Context, cmd commands.RejectOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetails, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderDetails), args.Error(1)
}

type MockListMyOrdersHandler struct{ mock.Mock }

func (m *MockListMyOrdersHandler) Handle(ctx context.Context, query queries.ListMyOrdersQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderSummary), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderSummary), args.Error(1)
}

type MockExportOrderHandler struct{ mock.Mock }

func (m *MockExportOrderHandler) Handle(ctx context.Context, query queries.ExportOrderQuery) (queries.ExportOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ExportOrderQueryResponse), args.Error(1)
}
