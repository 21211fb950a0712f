package menu_test

import (
	"testing"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/menu"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewDish(t *testing.T) {
	t.Run("should create available dish", func(t *testing.T) {
		d, err := menu.NewDish("Margherita", "Tomato and mozzarella", money(t, "10.00"), "MAIN")

		require.NoError(t, err)
		assert.Equal(t, "Margherita", d.Name())
		assert.Equal(t, "10.00", d.Price().String())
		assert.Equal(t, "MAIN", d.Category())
		assert.True(t, d.Available())
	})

	t.Run("should fail without name", func(t *testing.T) {
		_, err := menu.NewDish("", "anonymous", money(t, "5.00"), "MAIN")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without category", func(t *testing.T) {
		_, err := menu.NewDish("Margherita", "", money(t, "5.00"), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should be its own single element", func(t *testing.T) {
		d, _ := menu.NewDish("Margherita", "", money(t, "10.00"), "MAIN")

		elements := d.Elements()

		require.Len(t, elements, 1)
		assert.Equal(t, menu.Item(d), elements[0])
	})
}

func TestComboMenu(t *testing.T) {
	t.Run("should price as sum of children", func(t *testing.T) {
		combo, err := menu.NewComboMenu("Lunch deal", "Dish plus drink")
		require.NoError(t, err)

		dish, _ := menu.NewDish("Burger", "", money(t, "8.50"), "MAIN")
		drink, _ := menu.NewDish("Lemonade", "", money(t, "2.50"), "DRINK")
		require.NoError(t, combo.Add(dish))
		require.NoError(t, combo.Add(drink))

		assert.Equal(t, "11.00", combo.Price().String())
		assert.Len(t, combo.Elements(), 2)
	})

	t.Run("should keep duplicate children and price them twice", func(t *testing.T) {
		combo, _ := menu.NewComboMenu("Double", "")
		dish, _ := menu.NewDish("Taco", "", money(t, "4.00"), "MAIN")

		_ = combo.Add(dish)
		_ = combo.Add(dish)

		assert.Equal(t, "8.00", combo.Price().String())
		assert.Len(t, combo.Items(), 2)
	})

	t.Run("should remove only the first occurrence", func(t *testing.T) {
		combo, _ := menu.NewComboMenu("Double", "")
		dish, _ := menu.NewDish("Taco", "", money(t, "4.00"), "MAIN")
		_ = combo.Add(dish)
		_ = combo.Add(dish)

		combo.Remove(dish)

		assert.Equal(t, "4.00", combo.Price().String())
	})

	t.Run("should reject nil item", func(t *testing.T) {
		combo, _ := menu.NewComboMenu("Lunch deal", "")

		err := combo.Add(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("plain combo is always complete", func(t *testing.T) {
		combo, _ := menu.NewComboMenu("Lunch deal", "")

		assert.True(t, combo.IsComplete())
	})
}

func TestBuffetMenu(t *testing.T) {
	addDishes := func(t *testing.T, m *menu.ComboMenu, category string, n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			d, err := menu.NewDish(category+"-dish", "", money(t, "6.00"), category)
			require.NoError(t, err)
			require.NoError(t, m.Add(d))
		}
	}

	t.Run("should be incomplete until every category minimum is met", func(t *testing.T) {
		buffet, err := menu.NewBuffetMenu("Gala buffet", "Graduation party")
		require.NoError(t, err)

		assert.False(t, buffet.IsComplete())

		addDishes(t, buffet, "STARTER", 2)
		addDishes(t, buffet, "MAIN", 3)
		addDishes(t, buffet, "DESSERT", 2)
		assert.False(t, buffet.IsComplete())

		addDishes(t, buffet, "DRINK", 2)
		assert.True(t, buffet.IsComplete())
	})

	t.Run("should match categories case-insensitively", func(t *testing.T) {
		buffet, _ := menu.NewBuffetMenu("Gala buffet", "")
		addDishes(t, buffet, "starter", 2)
		addDishes(t, buffet, "Main", 3)
		addDishes(t, buffet, "dessert", 2)
		addDishes(t, buffet, "drink", 2)

		assert.True(t, buffet.IsComplete())
	})

	t.Run("should accept custom minimums", func(t *testing.T) {
		buffet, _ := menu.NewBuffetMenu("Gala buffet", "")
		require.NoError(t, buffet.SetMinimumFor("MAIN", 5))

		addDishes(t, buffet, "STARTER", 2)
		addDishes(t, buffet, "MAIN", 3)
		addDishes(t, buffet, "DESSERT", 2)
		addDishes(t, buffet, "DRINK", 2)

		assert.False(t, buffet.IsComplete())
	})

	t.Run("should reject non-positive minimum", func(t *testing.T) {
		buffet, _ := menu.NewBuffetMenu("Gala buffet", "")

		err := buffet.SetMinimumFor("MAIN", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestExtraKind(t *testing.T) {
	t.Run("should validate defined kinds", func(t *testing.T) {
		for _, k := range []menu.ExtraKind{
			menu.KindIngredient, menu.KindSauce, menu.KindPortion, menu.KindSide, menu.KindDrink,
		} {
			assert.NoError(t, k.Validate())
		}
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		require.Error(t, menu.KindUnknown.Validate())
		require.Error(t, menu.ExtraKind(42).Validate())
		assert.Equal(t, "Unknown", menu.ExtraKind(42).String())
	})
}

func TestExtra(t *testing.T) {
	base := func(t *testing.T) *menu.Dish {
		t.Helper()
		d, err := menu.NewDish("Margherita", "", money(t, "10.00"), "MAIN")
		require.NoError(t, err)
		return d
	}

	t.Run("should price wrapped item plus surcharge", func(t *testing.T) {
		e, err := menu.NewExtra(base(t), "Mozzarella", money(t, "1.50"), menu.KindIngredient, 2)

		require.NoError(t, err)
		assert.Equal(t, "13.00", e.Price().String())
		assert.Equal(t, "3.00", e.Surcharge().String())
	})

	t.Run("should chain extras", func(t *testing.T) {
		first, _ := menu.NewExtra(base(t), "Mozzarella", money(t, "1.50"), menu.KindIngredient, 1)
		second, err := menu.NewExtra(first, "Pesto", money(t, "0.80"), menu.KindSauce, 1)

		require.NoError(t, err)
		assert.Equal(t, "12.30", second.Price().String())
		assert.Equal(t, menu.Item(first), second.Base())
	})

	t.Run("flattened elements sum to the chain price", func(t *testing.T) {
		first, _ := menu.NewExtra(base(t), "Mozzarella", money(t, "1.50"), menu.KindIngredient, 2)
		second, _ := menu.NewExtra(first, "Pesto", money(t, "0.80"), menu.KindSauce, 1)

		elements := second.Elements()
		require.Len(t, elements, 3)

		sum := kernel.ZeroMoney()
		for _, el := range elements {
			sum = sum.Add(el.Price())
		}
		assert.True(t, sum.Equals(second.Price()))
	})

	t.Run("should render full name with kind", func(t *testing.T) {
		e, _ := menu.NewExtra(base(t), "Mozzarella", money(t, "1.50"), menu.KindIngredient, 1)

		assert.Equal(t, "Margherita + Mozzarella (Ingredient)", e.FullName())
	})

	t.Run("should reject invalid construction", func(t *testing.T) {
		_, err := menu.NewExtra(nil, "Mozzarella", money(t, "1.50"), menu.KindIngredient, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = menu.NewExtra(base(t), "", money(t, "1.50"), menu.KindIngredient, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = menu.NewExtra(base(t), "Mozzarella", money(t, "1.50"), menu.KindUnknown, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = menu.NewExtra(base(t), "Mozzarella", money(t, "1.50"), menu.KindIngredient, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
