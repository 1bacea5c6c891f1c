package manager

import (
	"log"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// FoodKind identifies a food type. At most one item of each kind is live.
type FoodKind int

const (
	Apple FoodKind = iota
	Candy
)

func (k FoodKind) String() string {
	switch k {
	case Apple:
		return "apple"
	case Candy:
		return "candy"
	default:
		return "unknown"
	}
}

// FoodSpec is the fixed scoring and lifecycle data of a kind.
type FoodSpec struct {
	Kind        FoodKind
	Score       int
	Lifetime    int     // ticks
	Probability float64 // percent chance per tick while absent
}

// DefaultFoods returns the reference food table.
func DefaultFoods() []FoodSpec {
	return []FoodSpec{
		{Kind: Apple, Score: 10, Lifetime: 45, Probability: 100},
		{Kind: Candy, Score: 50, Lifetime: 15, Probability: 1},
	}
}

// BlinkWindow is how many ticks before expiry a food starts blinking.
const BlinkWindow = 6

type Food struct {
	Kind     FoodKind
	Position types.Point
	Age      int
	Score    int
	Lifetime int
}

// Visible is the renderer's blink hint: near expiry, even ages are hidden.
func (f Food) Visible(blinkWindow int) bool {
	return !(f.Lifetime-f.Age < blinkWindow && f.Age%2 == 0)
}

type FoodManager struct {
	grid         types.Grid
	specs        []FoodSpec
	foodList     []Food
	collisionMgr *CollisionManager
	rng          types.Rand
}

func NewFoodManager(grid types.Grid, specs []FoodSpec, collisionMgr *CollisionManager, rng types.Rand) *FoodManager {
	s := make([]FoodSpec, len(specs))
	copy(s, specs)
	return &FoodManager{
		grid:         grid,
		specs:        s,
		foodList:     make([]Food, 0, len(s)),
		collisionMgr: collisionMgr,
		rng:          rng,
	}
}

// Update runs one food tick: roll spawns for absent kinds, then age every
// item and drop the ones past their lifetime.
func (fm *FoodManager) Update(snake *entity.Snake) {
	for _, spec := range fm.specs {
		if fm.Has(spec.Kind) {
			continue
		}
		if fm.rng.Float64()*100 >= spec.Probability {
			continue
		}
		pos, ok := fm.GenerateFood(snake)
		if !ok {
			log.Printf("food: no free cell for %s, spawn skipped", spec.Kind)
			continue
		}
		fm.foodList = append(fm.foodList, Food{
			Kind:     spec.Kind,
			Position: pos,
			Score:    spec.Score,
			Lifetime: spec.Lifetime,
		})
	}

	live := fm.foodList[:0]
	for _, f := range fm.foodList {
		f.Age++
		if f.Age > f.Lifetime {
			continue
		}
		live = append(live, f)
	}
	fm.foodList = live
}

// GenerateFood samples a free cell. Rejection sampling is bounded; after
// that a free cell is picked from the enumerated board. ok is false only
// when the board has no free cell at all.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	attempts := 4 * fm.grid.Cells()
	for i := 0; i < attempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.isFree(food, snake) {
			return food, true
		}
	}

	free := make([]types.Point, 0)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.isFree(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) isFree(p types.Point, snake *entity.Snake) bool {
	if !fm.collisionMgr.ValidateSpawnPosition(p, snake) {
		return false
	}
	_, taken := fm.At(p)
	return !taken
}

// AddFood places a fresh item of kind at pos. It refuses when the kind is
// already live, the kind is unknown or the cell is not free.
func (fm *FoodManager) AddFood(kind FoodKind, pos types.Point, snake *entity.Snake) bool {
	spec, ok := fm.spec(kind)
	if !ok || fm.Has(kind) || !fm.isFree(pos, snake) {
		return false
	}
	fm.foodList = append(fm.foodList, Food{
		Kind:     kind,
		Position: pos,
		Score:    spec.Score,
		Lifetime: spec.Lifetime,
	})
	return true
}

// TakeAt removes and returns the item at p, if any.
func (fm *FoodManager) TakeAt(p types.Point) (Food, bool) {
	for i, f := range fm.foodList {
		if f.Position == p {
			fm.foodList = append(fm.foodList[:i], fm.foodList[i+1:]...)
			return f, true
		}
	}
	return Food{}, false
}

// At returns the item at p without removing it.
func (fm *FoodManager) At(p types.Point) (Food, bool) {
	for _, f := range fm.foodList {
		if f.Position == p {
			return f, true
		}
	}
	return Food{}, false
}

func (fm *FoodManager) Has(kind FoodKind) bool {
	for _, f := range fm.foodList {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

func (fm *FoodManager) GetFoodList() []Food {
	out := make([]Food, len(fm.foodList))
	copy(out, fm.foodList)
	return out
}

func (fm *FoodManager) spec(kind FoodKind) (FoodSpec, bool) {
	for _, s := range fm.specs {
		if s.Kind == kind {
			return s, true
		}
	}
	return FoodSpec{}, false
}
