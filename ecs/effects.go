package ecs

// EffectKind identifies a timed side effect.
type EffectKind int

const (
	// EffectRemove destroys a transient entity (muzzle flash, beam) and its visual.
	EffectRemove EffectKind = iota + 1
	// EffectRevertFlash restores an enemy's emissive colour after a hit flash.
	EffectRevertFlash
	// EffectRecoilReset moves the weapon model back to rest.
	EffectRecoilReset
	// EffectDamageFlashOff clears the screen damage flash.
	EffectDamageFlashOff
)

func (k EffectKind) String() string {
	switch k {
	case EffectRemove:
		return "remove"
	case EffectRevertFlash:
		return "revert_flash"
	case EffectRecoilReset:
		return "recoil_reset"
	case EffectDamageFlashOff:
		return "damage_flash_off"
	}
	return "unknown"
}

// Effect is a side effect due at ExpiresAt (ms). Target is the zero Entity
// for effects that do not belong to an entity.
type Effect struct {
	Kind      EffectKind
	Target    Entity
	ExpiresAt float64
}

// EffectList holds pending effects in scheduling order.
type EffectList struct {
	items []Effect
}

// Schedule queues an effect.
func (l *EffectList) Schedule(e Effect) {
	if l == nil {
		return
	}
	l.items = append(l.items, e)
}

// Expire removes and returns every effect due at or before now, preserving
// scheduling order.
func (l *EffectList) Expire(now float64) []Effect {
	if l == nil || len(l.items) == 0 {
		return nil
	}
	var due []Effect
	kept := l.items[:0]
	for _, e := range l.items {
		if e.ExpiresAt <= now {
			due = append(due, e)
			continue
		}
		kept = append(kept, e)
	}
	l.items = kept
	return due
}

// Pending returns a copy of the queued effects.
func (l *EffectList) Pending() []Effect {
	if l == nil {
		return nil
	}
	return append([]Effect(nil), l.items...)
}

func (l *EffectList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Clear drops every pending effect.
func (l *EffectList) Clear() {
	if l == nil {
		return
	}
	l.items = nil
}
