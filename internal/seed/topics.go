package seed

import (
	"fmt"

	"github.com/flipword/api/internal/model"
	"github.com/google/uuid"
)

// namespace keys the deterministic ids of built-in words, so every process
// seeds byte-identical documents.
var namespace = uuid.MustParse("6f1d7c52-2f0e-4b8e-9d0a-4c1e5a2b7f33")

type entry struct {
	en, zh, pos, enSent, zhSent string
}

var exam1 = []entry{
	{
		"start-up",
		"新創公司",
		"n.",
		"Jack's small start-up evolved into a successful tech company.",
		"傑克的小型新創公司逐漸發展成一家成功的科技公司。",
	},
	{
		"specialize",
		"專攻；專門從事",
		"v.",
		"In most countries' education systems, students specialize more as they get older.",
		"在多數國家的教育體系中，學生隨著年齡增長會更趨於專攻。",
	},
	{
		"target",
		"鎖定；以…為目標",
		"v.",
		"The fast-food restaurant targeted young children by offering a free toy.",
		"那家速食餐廳透過提供免費玩具，把年幼兒童作為目標。",
	},
	{
		"range",
		"範圍；幅度",
		"n.",
		"Matt is looking to buy a phone in the two- to three-thousand-dollar price range.",
		"馬特打算購買一支落在兩到三千美元價位範圍的手機。",
	},
	{
		"brand awareness",
		"品牌知名度",
		"n.",
		"The company invested more money into social media in an attempt to increase brand awareness.",
		"該公司投入更多社群媒體的資金，試圖提高品牌知名度。",
	},
	{
		"channel",
		"管道；途徑",
		"n.",
		"Selling online has become very popular, but companies still need to pay close attention to traditional sales channels, too.",
		"線上銷售變得很受歡迎，但企業仍須密切注意傳統的銷售管道。",
	},
	{
		"promotional",
		"促銷的；宣傳的",
		"adj.",
		"Our marketing department will create promotional material to advertise the new product.",
		"我們的行銷部門會製作宣傳素材來為這項新產品做廣告。",
	},
	{
		"campaign",
		"活動；運動",
		"n.",
		"The government ran a campaign to clean up the city.",
		"政府發起了一項清理城市的活動。",
	},
	{
		"collaborator",
		"合作者；協作者",
		"n.",
		"The director thanked the movie's many collaborators in his acceptance speech for the award.",
		"導演在上台領獎致詞時感謝了這部電影的眾多合作者。",
	},
	{
		"supervise",
		"監督；指導",
		"v.",
		"All of the workers needed to be supervised closely to make sure things were done safely in the factory.",
		"所有工人都需要被緊密監督，以確保工廠內的作業安全。",
	},
	{
		"conduct",
		"進行；實施",
		"v.",
		"The scientists conducted experiments to try and find a cure.",
		"科學家們進行了實驗，試圖尋找治療方法。",
	},
	{
		"competitive",
		"有競爭力的；競爭性的",
		"adj.",
		"The product's competitive pricing made it popular with consumers on limited budgets.",
		"這款產品具有競爭力的定價，使它在預算有限的消費者之間大受歡迎。",
	},
}

// Topics returns a fresh copy of the built-in dataset.
func Topics() model.TopicsDocument {
	return model.TopicsDocument{
		Topics: []model.Topic{
			build("exam-1", "word bank(exam-1)", exam1),
		},
	}
}

// Topic looks a slug up in the built-in dataset only.
func Topic(slug string) (model.Topic, bool) {
	doc := Topics()
	if i := doc.Index(slug); i >= 0 {
		return doc.Topics[i], true
	}
	return model.Topic{}, false
}

func build(slug, title string, entries []entry) model.Topic {
	words := make([]model.Word, len(entries))
	for i, e := range entries {
		words[i] = model.Word{
			ID:     WordID(slug, i),
			En:     e.en,
			Zh:     e.zh,
			Pos:    e.pos,
			EnSent: e.enSent,
			ZhSent: e.zhSent,
		}
	}
	return model.Topic{Slug: slug, Title: title, Words: words}
}

// WordID derives the stable id of the i-th built-in word of a topic.
func WordID(slug string, i int) string {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%s/%d", slug, i))).String()
}
