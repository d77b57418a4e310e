package domain

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Sameer-09816/api/internal/models"
)

// extracted holds the fields pulled out of the threadster download page.
type extracted struct {
	avatar   string
	username string
	caption  string
	urls     []string
}

// extractMedia walks the fixed markup of the threadster download page.
// The selectors are brittle against upstream changes; any missing piece
// of the first item's substructure is a structural error, not a sentinel.
func extractMedia(html string) (*extracted, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	wrapper := doc.Find("div.download__wrapper").First()
	if wrapper.Length() == 0 {
		return nil, ErrContentNotFound
	}

	items := wrapper.Find("div.download_item")
	if items.Length() == 0 {
		return nil, ErrNoDownloadableItems
	}

	first := items.First()

	profilePic := first.Find("div.download__item__profile_pic").First()
	avatar, ok := profilePic.Find("img").First().Attr("src")
	if !ok {
		return nil, fmt.Errorf("first item has no avatar image")
	}

	usernameNode := profilePic.Find("span").First()
	if usernameNode.Length() == 0 {
		return nil, fmt.Errorf("first item has no username label")
	}
	username := usernameNode.Text()

	captionNode := first.Find("div.download__item__caption__text").First()
	if captionNode.Length() == 0 {
		return nil, fmt.Errorf("first item has no caption block")
	}
	caption := captionNode.Text()

	var urls []string
	items.Each(func(_ int, item *goquery.Selection) {
		href, ok := item.Find("a.btn.download__item__info__actions__button").First().Attr("href")
		if ok {
			urls = append(urls, href)
		}
	})
	if len(urls) == 0 {
		return nil, ErrNoDownloadLinks
	}

	return &extracted{
		avatar:   avatar,
		username: username,
		caption:  caption,
		urls:     urls,
	}, nil
}

func (e *extracted) toResult() *models.MediaResult {
	return &models.MediaResult{
		Ok:       true,
		Message:  "Content retrieved successfully",
		Avatar:   e.avatar,
		Caption:  e.caption,
		URL:      e.urls,
		Username: e.username,
	}
}
