package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse_RSSItem(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <item>
      <title>Hello &amp; World</title>
      <link>http://x/a</link>
      <pubDate>Mon, 02 Jan 2006 15:04:05 +0000</pubDate>
    </item>
  </channel>
</rss>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.Equal(t, "Example Feed", feed.Title)
	require.Len(t, feed.Items, 1)

	item := feed.Items[0]
	require.Equal(t, "Hello & World", item.Title)
	require.Equal(t, "http://x/a", item.Link)
	require.True(t, item.PublishedAt.Equal(time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)))
	require.Nil(t, item.Description)
	require.Nil(t, item.ImageURL)
}

func TestParse_AtomEntryHrefLink(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <entry>
    <title>T</title>
    <link href="http://x/b"/>
    <updated>2021-05-01T00:00:00Z</updated>
  </entry>
</feed>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.Equal(t, "Atom Feed", feed.Title)
	require.Len(t, feed.Items, 1)

	item := feed.Items[0]
	require.Equal(t, "T", item.Title)
	require.Equal(t, "http://x/b", item.Link)
	require.True(t, item.PublishedAt.Equal(time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParse_TextLinkWinsOverHref(t *testing.T) {
	data := []byte(`<rss><channel><item>
    <title>T</title>
    <link>http://x/text</link>
    <link href="http://x/href"/>
  </item></channel></rss>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	require.Equal(t, "http://x/text", feed.Items[0].Link)
}

func TestParse_ItemWithoutTitleDropped(t *testing.T) {
	data := []byte(`<rss><channel>
    <item><link>http://x/only-link</link></item>
    <item><title>only title</title></item>
    <item><title>kept</title><link>http://x/kept</link></item>
  </channel></rss>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	require.Equal(t, "kept", feed.Items[0].Title)
}

func TestParse_DescriptionAccumulatesAndSanitizes(t *testing.T) {
	data := []byte(`<rss><channel><item>
    <title>T</title>
    <link>http://x/a</link>
    <description><![CDATA[<p>first &amp; foremost</p>]]></description>
  </item></channel></rss>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	require.NotNil(t, feed.Items[0].Description)
	require.Equal(t, "first & foremost", *feed.Items[0].Description)
}

func TestParse_ContentEncodedFeedsDescription(t *testing.T) {
	data := []byte(`<rss xmlns:content="http://purl.org/rss/1.0/modules/content/"><channel><item>
    <title>T</title>
    <link>http://x/a</link>
    <content:encoded><![CDATA[<b>body</b>]]></content:encoded>
  </item></channel></rss>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.NotNil(t, feed.Items[0].Description)
	require.Equal(t, "body", *feed.Items[0].Description)
}

func TestParse_MediaImageFirstMatchWins(t *testing.T) {
	data := []byte(`<rss xmlns:media="http://search.yahoo.com/mrss/"><channel><item>
    <title>T</title>
    <link>http://x/a</link>
    <media:thumbnail url="http://img/first.jpg"/>
    <media:content url="http://img/second.jpg"/>
    <enclosure url="http://img/third.jpg" type="image/png"/>
  </item></channel></rss>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.NotNil(t, feed.Items[0].ImageURL)
	require.Equal(t, "http://img/first.jpg", *feed.Items[0].ImageURL)
}

func TestParse_EnclosureImageOnlyForImageTypes(t *testing.T) {
	data := []byte(`<rss><channel>
    <item>
      <title>audio</title>
      <link>http://x/audio</link>
      <enclosure url="http://files/ep.mp3" type="audio/mpeg"/>
    </item>
    <item>
      <title>image</title>
      <link>http://x/image</link>
      <enclosure url="http://img/pic.jpg" type="image/jpeg"/>
    </item>
  </channel></rss>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	require.Nil(t, feed.Items[0].ImageURL)
	require.NotNil(t, feed.Items[1].ImageURL)
	require.Equal(t, "http://img/pic.jpg", *feed.Items[1].ImageURL)
}

func TestParse_BadDateFallsBackToNow(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := &Parser{now: func() time.Time { return fixed }}

	data := []byte(`<rss><channel><item>
    <title>T</title>
    <link>http://x/a</link>
    <pubDate>not-a-date</pubDate>
  </item></channel></rss>`)

	feed, err := p.Parse(data)
	require.NoError(t, err)
	require.True(t, feed.Items[0].PublishedAt.Equal(fixed))
}

func TestParse_MissingDateUsesNow(t *testing.T) {
	before := time.Now().UTC()
	data := []byte(`<rss><channel><item><title>T</title><link>http://x/a</link></item></channel></rss>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	after := time.Now().UTC()

	published := feed.Items[0].PublishedAt
	require.False(t, published.Before(before))
	require.False(t, published.After(after))
}

func TestParse_FeedTitleDecoded(t *testing.T) {
	data := []byte(`<rss><channel><title>News &amp; Views</title></channel></rss>`)

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.Equal(t, "News & Views", feed.Title)
}

func TestParse_WhitespaceOnlyCharDataIgnored(t *testing.T) {
	data := []byte("<rss><channel><item>\n  <title>\n    spaced\n  </title>\n  <link>\n    http://x/a\n  </link>\n</item></channel></rss>")

	feed, err := New().Parse(data)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	require.Equal(t, "spaced", feed.Items[0].Title)
	require.Equal(t, "http://x/a", feed.Items[0].Link)
}

func TestParse_NotXML(t *testing.T) {
	_, err := New().Parse([]byte("this is not xml at all"))
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := New().Parse(nil)
	require.Error(t, err)
}
