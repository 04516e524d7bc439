package helpers

import tele "gopkg.in/telebot.v4"

// CurrentSettings resolves the sender of the current update to their stored
// per-user state. The generic type T lets callers supply their own settings
// model; the store is expected to fall back to defaults for unseen users.
func CurrentSettings[T any](
	c tele.Context,
	store interface{ GetOrCreate(int64) T },
) T {
	var zero T
	if store == nil {
		return zero
	}
	var id int64
	if u := c.Sender(); u != nil {
		id = u.ID
	}
	return store.GetOrCreate(id)
}
