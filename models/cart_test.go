package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddInsertsAtOne(t *testing.T) {
	cart := SelectionCart{}
	cart.Add("cut")
	assert.Equal(t, 1, cart["cut"])
}

func TestCartAddIncrements(t *testing.T) {
	cart := SelectionCart{"cut": 2}
	cart.Add("cut")
	assert.Equal(t, 3, cart["cut"])
}

func TestCartRemoveDecrements(t *testing.T) {
	cart := SelectionCart{"cut": 3}
	cart.Remove("cut")
	assert.Equal(t, 2, cart["cut"])
}

func TestCartRemoveDeletesAtZero(t *testing.T) {
	cart := SelectionCart{"cut": 1}
	cart.Remove("cut")
	_, exists := cart["cut"]
	assert.False(t, exists, "entry should be removed once quantity reaches zero")
}

func TestCartRemoveMissingIsNoop(t *testing.T) {
	cart := SelectionCart{"cut": 1}
	cart.Remove("shave")
	assert.Equal(t, SelectionCart{"cut": 1}, cart)
}

func TestCartTotalPrice(t *testing.T) {
	catalogue := []Service{
		{ID: "cut", Price: 500},
		{ID: "shave", Price: 300},
	}
	cart := SelectionCart{"cut": 2, "shave": 1}
	assert.Equal(t, 1300.0, cart.TotalPrice(catalogue))
}

func TestCartTotalPriceMissingServiceContributesZero(t *testing.T) {
	catalogue := []Service{{ID: "cut", Price: 500}}
	cart := SelectionCart{"cut": 1, "gone": 4}
	assert.Equal(t, 500.0, cart.TotalPrice(catalogue))
}

func TestCartTotalItems(t *testing.T) {
	cart := SelectionCart{"cut": 2, "shave": 3}
	assert.Equal(t, 5, cart.TotalItems())
	assert.Equal(t, 0, SelectionCart{}.TotalItems())
}
