package impl

import (
	"context"
	"fmt"
	"testing"

	"orderpad/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveOrder(t *testing.T, f *fixtures, ids ...string) {
	t.Helper()

	ctx := context.Background()
	items := make([]entity.OrderLine, 0, len(ids))
	var total float64
	for _, id := range ids {
		items = append(items, entity.OrderLine{ProductID: id, Price: 10, Quantity: 1})
		total += 10
	}
	_, err := f.history.Save(ctx, items, total)
	require.NoError(t, err)
}

func TestFavouritesService_EmptyHistoryYieldsNoFavourites(t *testing.T) {
	f := newFixtures()

	top, err := f.favourites.Top(context.Background())
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestFavouritesService_RanksByOrderFrequency(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	f.mustAddProduct(ctx, "a", "Milk", "500ml", 10, "Dairy")
	f.mustAddProduct(ctx, "b", "Butter", "100g", 10, "Dairy")
	f.mustAddProduct(ctx, "c", "Curd", "400g", 10, "Dairy")

	saveOrder(t, f, "a", "b")
	saveOrder(t, f, "b", "c")
	saveOrder(t, f, "b")

	top, err := f.favourites.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "b", top[0].ID) // three orders
}

func TestFavouritesService_QuantityDoesNotAffectRank(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	f.mustAddProduct(ctx, "a", "Milk", "500ml", 10, "Dairy")
	f.mustAddProduct(ctx, "b", "Butter", "100g", 10, "Dairy")

	// One order with a huge quantity of a, two orders containing b.
	_, err := f.history.Save(ctx, []entity.OrderLine{{ProductID: "a", Price: 10, Quantity: 99}}, 990)
	require.NoError(t, err)
	saveOrder(t, f, "b")
	saveOrder(t, f, "b")

	top, err := f.favourites.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].ID)
}

func TestFavouritesService_NeverExceedsLimit(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	ids := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("p%d", i)
		f.mustAddProduct(ctx, id, fmt.Sprintf("Item %d", i), "1u", 10, "Misc")
		ids = append(ids, id)
	}
	saveOrder(t, f, ids...)

	top, err := f.favourites.Top(ctx)
	require.NoError(t, err)
	assert.Len(t, top, 5)
}

func TestFavouritesService_DropsDanglingIDs(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	f.mustAddProduct(ctx, "a", "Milk", "500ml", 10, "Dairy")

	saveOrder(t, f, "a", "gone")

	top, err := f.favourites.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "a", top[0].ID)
}

func TestFavouritesService_TieBreakIsStable(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	f.mustAddProduct(ctx, "a", "Milk", "500ml", 10, "Dairy")
	f.mustAddProduct(ctx, "b", "Butter", "100g", 10, "Dairy")

	// Both appear once; the scan sees the most recent order first.
	saveOrder(t, f, "a")
	saveOrder(t, f, "b")

	top, err := f.favourites.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].ID)
	assert.Equal(t, "a", top[1].ID)
}
