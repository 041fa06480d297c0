package seed

import (
	"time"

	"github.com/rpupo63/news-board-backend/models"
)

const seedImgURL = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

func ptr(s string) *string { return &s }

func at(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// TestData is the fixture set the integration suite runs against:
//   - topic "paper" has no articles and "cats" has exactly one
//   - article 1 (votes 100) has 11 comments and article 4 has none
//   - comment 16 belongs to article 6 and has 1 vote
func TestData() Data {
	return Data{
		Topics: []models.Topic{
			{Slug: "mitch", Description: ptr("The man, the Mitch, the legend")},
			{Slug: "cats", Description: ptr("Not dogs")},
			{Slug: "paper", Description: ptr("what books are made of")},
		},
		Users: []models.User{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []models.Article{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: at(1594329060000), Votes: 100, ArticleImgURL: seedImgURL},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago I thought I would buy a laptop.", CreatedAt: at(1602828180000), ArticleImgURL: seedImgURL},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: at(1604394720000), ArticleImgURL: seedImgURL},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: at(1588731240000), ArticleImgURL: seedImgURL},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: at(1596464040000), ArticleImgURL: seedImgURL},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: at(1602986400000), ArticleImgURL: seedImgURL},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: at(1578406080000), ArticleImgURL: seedImgURL},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity.", CreatedAt: at(1587089280000), ArticleImgURL: seedImgURL},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: at(1591438200000), ArticleImgURL: seedImgURL},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: at(1589433300000), ArticleImgURL: seedImgURL},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall.", CreatedAt: at(1579126860000), ArticleImgURL: seedImgURL},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: at(1602419040000), ArticleImgURL: seedImgURL},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: at(1602419041000), ArticleImgURL: seedImgURL},
		},
		Comments: []models.Comment{
			{ArticleID: 9, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", Votes: 16, CreatedAt: at(1586179020000)},
			{ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not like any I've ever felt.", Votes: 14, CreatedAt: at(1604113380000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.", Votes: 100, CreatedAt: at(1583025180000)},
			{ArticleID: 1, Author: "icellusedkars", Body: " I carry a log, yes. Is it funny to you? It is not to me.", Votes: -100, CreatedAt: at(1582459260000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", CreatedAt: at(1604437200000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming eyes even more", CreatedAt: at(1586642520000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", CreatedAt: at(1589577540000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Delicious crackerbreads", CreatedAt: at(1586899140000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Superficially charming", CreatedAt: at(1577848080000)},
			{ArticleID: 3, Author: "icellusedkars", Body: "git push origin master", CreatedAt: at(1592641440000)},
			{ArticleID: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", CreatedAt: at(1600560600000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Massive intercranial brain haemorrhage", CreatedAt: at(1583133000000)},
			{ArticleID: 1, Author: "icellusedkars", Body: "Fruit pastilles", CreatedAt: at(1592220300000)},
			{ArticleID: 5, Author: "icellusedkars", Body: "What do you see? I have no idea where this will lead us.", Votes: 16, CreatedAt: at(1591682400000)},
			{ArticleID: 5, Author: "butter_bridge", Body: "I am 100% sure that we're not completely sure.", Votes: 1, CreatedAt: at(1606176480000)},
			{ArticleID: 6, Author: "butter_bridge", Body: "This is a bad article name", Votes: 1, CreatedAt: at(1602433380000)},
			{ArticleID: 9, Author: "icellusedkars", Body: "The owls are not what they seem.", Votes: 20, CreatedAt: at(1584205320000)},
			{ArticleID: 1, Author: "butter_bridge", Body: "This morning, I showered for nine minutes.", Votes: 16, CreatedAt: at(1595294400000)},
		},
	}
}
