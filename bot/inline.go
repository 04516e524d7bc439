package bot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/m3rciful/pwgenbot/logger"
	"github.com/m3rciful/pwgenbot/passgen"
	tghelpers "github.com/m3rciful/pwgenbot/telegram/helpers"
	"github.com/m3rciful/pwgenbot/telegram/ui"

	tele "gopkg.in/telebot.v4"
)

// inlineQuery answers the Share flow: one personal article holding a password
// freshly generated from the querying user's settings. Users with every class
// disabled get an empty result list instead of an article.
func (a *App) inlineQuery(c tele.Context) error {
	query := c.Query()
	if query == nil {
		return nil
	}

	s := a.store.GetOrCreate(senderID(c))
	password, err := passgen.Generate(passgenOptions(s))
	if err != nil {
		if errors.Is(err, passgen.ErrNoClasses) {
			return c.Answer(&tele.QueryResponse{
				Results:    tele.Results{},
				CacheTime:  1,
				IsPersonal: true,
			})
		}
		return err
	}

	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "app", "inline.answered",
		slog.Int("len", len(password)),
		slog.Int("classes", s.EnabledCount()),
	)

	result := ui.NewMarkdownArticleResult(
		"pwgen-"+query.ID,
		fmt.Sprintf("🔐 Password (%d characters)", s.Length),
		"Fresh password from your saved settings. Tap to send.",
		"`"+password+"`",
	)
	return c.Answer(&tele.QueryResponse{
		Results: tele.Results{result},
		// cache_time zero is dropped during marshalling, one second is the
		// shortest the wire can express.
		CacheTime:  1,
		IsPersonal: true,
	})
}
