package middleware

import (
	"github.com/imroc/req/v3"
)

const TabSessionParam = "tab_session_id"

type TabSessionProvider interface {
	TabSessionID() string
}

// TabSession возвращает middleware клиента, добавляющее идентификатор вкладки
// к каждому исходящему запросу. Сервер сбрасывает сессию, если идентификатор
// не совпадает с сохраненным при входе.
func TabSession(p TabSessionProvider) req.RequestMiddleware {
	return func(_ *req.Client, r *req.Request) error {
		if id := p.TabSessionID(); id != "" {
			r.SetQueryParam(TabSessionParam, id)
		}

		return nil
	}
}
