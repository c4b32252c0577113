package service_test

import (
	"context"
	"testing"

	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stockFixture struct {
	svc        service.StockService
	items      *stubItemRepo
	categories *stubCategoryRepo
	branchID   uuid.UUID
	otherID    uuid.UUID
	catID      uuid.UUID
	typeID     uuid.UUID
}

func buildStockFixture() *stockFixture {
	items := newStubItemRepo()
	categories := newStubCategoryRepo()
	types := newStubTypeRepo()
	branches := newStubBranchRepo()

	branch := &model.Branch{Name: "Central", StockEnabled: true}
	other := &model.Branch{Name: "North", StockEnabled: true}
	_ = branches.Create(context.Background(), branch)
	_ = branches.Create(context.Background(), other)

	solidType := &model.ProductType{Name: model.ProfileSolid}
	_ = types.Create(context.Background(), solidType)

	cat := &model.ProductCategory{Name: "Round bar", ProductTypeID: solidType.ID, BranchID: branch.ID}
	_ = categories.Create(context.Background(), cat)

	return &stockFixture{
		svc:        service.NewStockService(items, categories, types, branches),
		items:      items,
		categories: categories,
		branchID:   branch.ID,
		otherID:    other.ID,
		catID:      cat.ID,
		typeID:     solidType.ID,
	}
}

func adminActor() service.Actor {
	return service.Actor{AccountID: uuid.New(), Role: model.RoleAdmin}
}

func branchActor(branchID uuid.UUID) service.Actor {
	return service.Actor{AccountID: uuid.New(), Role: model.RoleBranch, BranchID: &branchID}
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateItem_DerivesKgPriceFromPurchasePrice(t *testing.T) {
	f := buildStockFixture()

	// 4 pieces, 25 kg each lot weight, bought for 1000 → 1000/4/25 = 10/kg
	item, err := f.svc.CreateItem(context.Background(), adminActor(), dto.CreateStockItemRequest{
		ProductCategoryID: f.catID.String(),
		Weight:            25,
		Stock:             4,
		PurchasePrice:     floatPtr(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, item.KgPrice)
	assert.Equal(t, 1000.0, item.PurchasePrice)
	assert.True(t, item.Active)
}

func TestCreateItem_DerivesPurchasePriceFromKgPrice(t *testing.T) {
	f := buildStockFixture()

	item, err := f.svc.CreateItem(context.Background(), adminActor(), dto.CreateStockItemRequest{
		ProductCategoryID: f.catID.String(),
		Weight:            25,
		Stock:             4,
		KgPrice:           floatPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, item.PurchasePrice)
}

func TestCreateItem_SingleBundleLotUsesOneUnit(t *testing.T) {
	f := buildStockFixture()

	// Length-tracked lots carry stock=0; the price math must not divide by it.
	item, err := f.svc.CreateItem(context.Background(), adminActor(), dto.CreateStockItemRequest{
		ProductCategoryID: f.catID.String(),
		Diameter:          20,
		Length:            6000,
		Weight:            50,
		PurchasePrice:     floatPtr(500),
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, item.KgPrice)
}

func TestCreateItem_SnapshotsPurchaseQuantities(t *testing.T) {
	f := buildStockFixture()

	item, err := f.svc.CreateItem(context.Background(), adminActor(), dto.CreateStockItemRequest{
		ProductCategoryID: f.catID.String(),
		Diameter:          20,
		Length:            6000,
		Weight:            50,
		Stock:             2,
		KgPrice:           floatPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 6000.0, item.PurchaseLength)
	assert.Equal(t, 50.0, item.PurchaseWeight)
	assert.Equal(t, 2, item.PurchaseStock)
}

func TestCreateItem_OtherBranchForbidden(t *testing.T) {
	f := buildStockFixture()

	_, err := f.svc.CreateItem(context.Background(), branchActor(f.otherID), dto.CreateStockItemRequest{
		ProductCategoryID: f.catID.String(),
		Weight:            25,
		KgPrice:           floatPtr(10),
	})
	assert.ErrorIs(t, err, service.ErrBranchForbidden)
}

func TestUpdateItem_PurchaseSnapshotUntouched(t *testing.T) {
	f := buildStockFixture()
	item, err := f.svc.CreateItem(context.Background(), adminActor(), dto.CreateStockItemRequest{
		ProductCategoryID: f.catID.String(),
		Length:            6000,
		Weight:            50,
		KgPrice:           floatPtr(10),
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateItem(context.Background(), adminActor(), item.ID, dto.UpdateStockItemRequest{
		Length: floatPtr(3000),
		Weight: floatPtr(25),
	})
	require.NoError(t, err)
	assert.Equal(t, 3000.0, updated.Length)
	assert.Equal(t, 6000.0, updated.PurchaseLength)
	assert.Equal(t, 50.0, updated.PurchaseWeight)
}

func TestDeleteCategory_CascadesToItems(t *testing.T) {
	f := buildStockFixture()
	item, err := f.svc.CreateItem(context.Background(), adminActor(), dto.CreateStockItemRequest{
		ProductCategoryID: f.catID.String(),
		Weight:            25,
		KgPrice:           floatPtr(10),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteCategory(context.Background(), adminActor(), f.catID))

	_, err = f.items.FindByID(context.Background(), item.ID)
	assert.Error(t, err)
	_, err = f.categories.FindByID(context.Background(), f.catID)
	assert.Error(t, err)
}

func TestCreateCategory_BranchScoped(t *testing.T) {
	f := buildStockFixture()

	_, err := f.svc.CreateCategory(context.Background(), branchActor(f.otherID), dto.CreateCategoryRequest{
		Name:          "Sheet",
		ProductTypeID: f.typeID.String(),
		BranchID:      f.branchID.String(),
	})
	assert.ErrorIs(t, err, service.ErrBranchForbidden)

	created, err := f.svc.CreateCategory(context.Background(), branchActor(f.branchID), dto.CreateCategoryRequest{
		Name:          "Sheet",
		ProductTypeID: f.typeID.String(),
		BranchID:      f.branchID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sheet", created.Name)
}

func TestListItems_BranchActorSeesOwnBranchOnly(t *testing.T) {
	f := buildStockFixture()
	_, err := f.svc.CreateItem(context.Background(), adminActor(), dto.CreateStockItemRequest{
		ProductCategoryID: f.catID.String(),
		Weight:            25,
		KgPrice:           floatPtr(10),
	})
	require.NoError(t, err)

	mine, err := f.svc.ListItems(context.Background(), branchActor(f.branchID))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := f.svc.ListItems(context.Background(), branchActor(f.otherID))
	require.NoError(t, err)
	assert.Empty(t, others)
}
