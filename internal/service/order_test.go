package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/service"
	"github.com/canteenhq/canteen-backend/internal/testhelpers"
)

func TestCreatePurchaseOrderFiltersLines(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)

	productA := testhelpers.CreateProduct(t, db, "Milk", 100)
	productB := testhelpers.CreateProduct(t, db, "Oats", 50)
	productC := testhelpers.CreateProduct(t, db, "Potatoes", 200)

	order, err := svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{
		productA.ID: 5,
		productB.ID: 0,
		productC.ID: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, cook.ID, order.CookID)
	assert.Nil(t, order.ApproverID)
	assert.Nil(t, order.ApprovedAt)

	// ProductB's zero-quantity line must be dropped.
	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 2)

	quantities := map[uuid.UUID]float64{}
	for _, item := range items {
		quantities[item.ProductID] = item.QuantityRequested
		assert.Nil(t, item.QuantityApproved)
	}
	assert.Equal(t, 5.0, quantities[productA.ID])
	assert.Equal(t, 2.0, quantities[productC.ID])
}

func TestCreatePurchaseOrderEmpty(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)
	product := testhelpers.CreateProduct(t, db, "Milk", 100)

	// All-zero and negative quantities leave nothing to order.
	order, err := svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{
		product.ID: 0,
	})
	assert.ErrorIs(t, err, service.ErrEmptyOrder)
	assert.Nil(t, order)

	order, err = svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{
		product.ID: -3,
	})
	assert.ErrorIs(t, err, service.ErrEmptyOrder)
	assert.Nil(t, order)

	// Nothing was persisted.
	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.PurchaseOrder{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestCreatePurchaseOrderUnknownProduct(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)

	order, err := svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{
		uuid.New(): 5,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Nil(t, order)

	// The transaction must have rolled everything back.
	var orderCount int64
	require.NoError(t, db.Model(&models.PurchaseOrder{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestCreatePurchaseOrderRequiresCook(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)
	product := testhelpers.CreateProduct(t, db, "Milk", 100)

	_, err := svc.CreatePurchaseOrder(context.Background(), student.ID, models.RoleStudent, map[uuid.UUID]float64{
		product.ID: 5,
	})
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestResolvePurchaseOrder(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)
	admin := testhelpers.CreateUser(t, db, "admin1", models.RoleAdmin)
	product := testhelpers.CreateProduct(t, db, "Milk", 100)

	order, err := svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{
		product.ID: 5,
	})
	require.NoError(t, err)

	resolved, err := svc.ResolvePurchaseOrder(context.Background(), order.ID, admin.ID, models.RoleAdmin, service.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusApproved, resolved.Status)
	require.NotNil(t, resolved.ApproverID)
	assert.Equal(t, admin.ID, *resolved.ApproverID)
	assert.NotNil(t, resolved.ApprovedAt)

	// Stamps are persisted, not just returned.
	stored, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusApproved, stored.Status)
	require.NotNil(t, stored.ApproverID)
	assert.Equal(t, admin.ID, *stored.ApproverID)
}

func TestResolvePurchaseOrderTwice(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)
	admin := testhelpers.CreateUser(t, db, "admin1", models.RoleAdmin)
	product := testhelpers.CreateProduct(t, db, "Milk", 100)

	order, err := svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{
		product.ID: 5,
	})
	require.NoError(t, err)

	first, err := svc.ResolvePurchaseOrder(context.Background(), order.ID, admin.ID, models.RoleAdmin, service.DecisionApprove)
	require.NoError(t, err)

	// Repeat approval and a late rejection both fail the same way.
	_, err = svc.ResolvePurchaseOrder(context.Background(), order.ID, admin.ID, models.RoleAdmin, service.DecisionApprove)
	assert.ErrorIs(t, err, service.ErrAlreadyResolved)
	_, err = svc.ResolvePurchaseOrder(context.Background(), order.ID, admin.ID, models.RoleAdmin, service.DecisionReject)
	assert.ErrorIs(t, err, service.ErrAlreadyResolved)

	// The original resolution stamp is untouched.
	stored, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedAt)
	assert.WithinDuration(t, *first.ApprovedAt, *stored.ApprovedAt, time.Second)
}

func TestResolvePurchaseOrderReject(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)
	admin := testhelpers.CreateUser(t, db, "admin1", models.RoleAdmin)
	product := testhelpers.CreateProduct(t, db, "Milk", 100)

	order, err := svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{
		product.ID: 5,
	})
	require.NoError(t, err)

	resolved, err := svc.ResolvePurchaseOrder(context.Background(), order.ID, admin.ID, models.RoleAdmin, service.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusRejected, resolved.Status)
}

func TestResolvePurchaseOrderGuards(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)
	admin := testhelpers.CreateUser(t, db, "admin1", models.RoleAdmin)

	// Unknown order
	_, err := svc.ResolvePurchaseOrder(context.Background(), uuid.New(), admin.ID, models.RoleAdmin, service.DecisionApprove)
	assert.ErrorIs(t, err, service.ErrNotFound)

	// Non-admin caller
	product := testhelpers.CreateProduct(t, db, "Milk", 100)
	order, err := svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{
		product.ID: 1,
	})
	require.NoError(t, err)

	_, err = svc.ResolvePurchaseOrder(context.Background(), order.ID, cook.ID, models.RoleCook, service.DecisionApprove)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestResolveLeavesStockUntouched(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)
	admin := testhelpers.CreateUser(t, db, "admin1", models.RoleAdmin)
	product := testhelpers.CreateProduct(t, db, "Milk", 100)

	order, err := svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{
		product.ID: 5,
	})
	require.NoError(t, err)

	_, err = svc.ResolvePurchaseOrder(context.Background(), order.ID, admin.ID, models.RoleAdmin, service.DecisionApprove)
	require.NoError(t, err)

	// Approval does not feed back into the product ledger.
	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 100.0, stored.CurrentStock)
}

func TestListOrdersByStatus(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewOrderService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)
	admin := testhelpers.CreateUser(t, db, "admin1", models.RoleAdmin)
	product := testhelpers.CreateProduct(t, db, "Milk", 100)

	first, err := svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{product.ID: 1})
	require.NoError(t, err)
	_, err = svc.CreatePurchaseOrder(context.Background(), cook.ID, models.RoleCook, map[uuid.UUID]float64{product.ID: 2})
	require.NoError(t, err)

	_, err = svc.ResolvePurchaseOrder(context.Background(), first.ID, admin.ID, models.RoleAdmin, service.DecisionApprove)
	require.NoError(t, err)

	all, err := svc.ListOrders(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending := models.OrderStatusPending
	open, err := svc.ListOrders(context.Background(), &pending)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.NotEqual(t, first.ID, open[0].ID)
	require.Len(t, open[0].Items, 1)
}
