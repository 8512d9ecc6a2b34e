package chat

// Seed provides the default contact list a fresh install starts with:
// a handful of family/friend personas, one group wiring three of them
// together, and an assistant contact.
func Seed() []Chat {
	return []Chat{
		{
			ID:              "1",
			Name:            "Big Bro",
			Avatar:          "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200&h=200&fit=crop",
			LastMessage:     "I knew it. 🙄 Spit it out then. If it involves me driving anywhere, the answer is already no.",
			LastMessageTime: "05:41 pm",
			Status:          StatusOnline,
			Role:            "Brother",
			SpeechStyle:     "Sarcastic, direct, protective but annoying.",
			About:           "Busy with work, dont call.",
			Messages: []Message{
				{ID: "m1", Text: "hey Big bro, sup", Sender: SenderMe, Timestamp: "05:37 pm", Status: StatusRead},
				{ID: "m2", Text: "The ceiling. What do you want now, money? 🙄", Sender: SenderOther, Timestamp: "05:37 pm"},
				{ID: "m3", Text: "hey I don't always text to ask for money do i >_<", Sender: SenderMe, Timestamp: "05:38 pm", Status: StatusRead},
				{ID: "m4", Text: "Debatable. 🙄 So what's the \"emergency\" this time? If it's about the car, I'm already busy.", Sender: SenderOther, Timestamp: "05:38 pm"},
				{ID: "m5", Text: "well i did need a favor tho ;)", Sender: SenderMe, Timestamp: "05:41 pm", Status: StatusRead},
				{ID: "m6", Text: "I knew it. 🙄 Spit it out then. If it involves me driving anywhere, the answer is already no.", Sender: SenderOther, Timestamp: "05:41 pm"},
			},
		},
		{
			ID:              "2",
			Name:            "Mom",
			Avatar:          "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=200&h=200&fit=crop",
			LastMessage:     "Okay, take care. Wear your sweater, it's cold.",
			LastMessageTime: "04:15 pm",
			Status:          StatusOnline,
			Role:            "Mother",
			SpeechStyle:     "Caring, lots of emojis, slightly repetitive.",
			About:           "Family first ❤️",
			Messages: []Message{
				{ID: "mom1", Text: "Beta, did you eat? Call me when you are free.", Sender: SenderOther, Timestamp: "01:20 pm"},
				{ID: "mom2", Text: "Yes mom, just finished lunch.", Sender: SenderMe, Timestamp: "01:45 pm", Status: StatusRead},
				{ID: "mom3", Text: "Okay, take care. Wear your sweater, it's cold.", Sender: SenderOther, Timestamp: "04:15 pm"},
			},
		},
		{
			ID:              "3",
			Name:            "Sis",
			Avatar:          "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop",
			LastMessage:     "Give it back by tonight or you're dead.",
			LastMessageTime: "03:20 pm",
			Status:          StatusOnline,
			Role:            "Sister",
			SpeechStyle:     "Gen-Z slang, dramatic, fast typer.",
			Messages: []Message{
				{ID: "sis1", Text: "You stole my hoodie again!! I am telling Mom.", Sender: SenderOther, Timestamp: "02:00 pm"},
				{ID: "sis2", Text: "I didn't steal it, I borrowed it lol.", Sender: SenderMe, Timestamp: "02:30 pm", Status: StatusRead},
				{ID: "sis3", Text: "Give it back by tonight or you're dead.", Sender: SenderOther, Timestamp: "03:20 pm"},
			},
		},
		{
			ID:              "family-1",
			Name:            "Family ❤️",
			Avatar:          "https://images.unsplash.com/photo-1511895426328-dc8714191300?w=200&h=200&fit=crop",
			LastMessage:     "Mom: Group hug guys!",
			LastMessageTime: "10:00 am",
			IsGroup:         true,
			MemberIDs:       []string{"1", "2", "3"},
			Messages: []Message{
				{ID: "fm1", Text: "Welcome to the family group!", Sender: SenderOther, SenderName: "Mom", Timestamp: "09:00 am"},
				{ID: "fm2", Text: "Great, another place for Mom to send minion memes.", Sender: SenderOther, SenderName: "Big Bro", Timestamp: "09:15 am"},
				{ID: "fm3", Text: "LOL fr", Sender: SenderOther, SenderName: "Sis", Timestamp: "09:20 am"},
				{ID: "fm4", Text: "Group hug guys!", Sender: SenderOther, SenderName: "Mom", Timestamp: "10:00 am"},
			},
		},
		{
			ID:              "4",
			Name:            "My girl",
			Avatar:          "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop",
			LastMessage:     "Yes! See you then. ❤️",
			LastMessageTime: "02:05 pm",
			Status:          StatusOnline,
			Role:            "Girlfriend",
			SpeechStyle:     "Affectionate, uses \"babe\", lots of hearts.",
			About:           "Loving life with my favorite person.",
			Messages: []Message{
				{ID: "mg1", Text: "Miss you! Can't wait for dinner tonight ❤️", Sender: SenderOther, Timestamp: "11:00 am"},
				{ID: "mg2", Text: "Me too babe! 7pm?", Sender: SenderMe, Timestamp: "11:30 am", Status: StatusRead},
				{ID: "mg3", Text: "Yes! See you then. ❤️", Sender: SenderOther, Timestamp: "02:05 pm"},
			},
		},
		{
			ID:              "5",
			Name:            "Tom",
			Avatar:          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop",
			LastMessage:     "Cool, waiting.",
			LastMessageTime: "01:30 pm",
			Status:          StatusOffline,
			Role:            "Best Friend",
			SpeechStyle:     "Casual, gamer talk, lots of \"bro\" and \"chill\".",
			Messages: []Message{
				{ID: "t1", Text: "Bro, the new game is out. Jumping on Discord in 5?", Sender: SenderOther, Timestamp: "12:45 pm"},
				{ID: "t2", Text: "Sweet, just need to finish this work.", Sender: SenderMe, Timestamp: "01:00 pm", Status: StatusRead},
				{ID: "t3", Text: "Cool, waiting.", Sender: SenderOther, Timestamp: "01:30 pm"},
			},
		},
		{
			ID:              "6",
			Name:            "Meta AI",
			Avatar:          "https://images.unsplash.com/photo-1675271591211-126ad94e495d?w=200&h=200&fit=crop",
			LastMessage:     "Because they make up everything! ⚛️",
			LastMessageTime: "12:00 pm",
			Status:          StatusOnline,
			Role:            "AI Assistant",
			SpeechStyle:     "Professional, helpful, creative, and strictly logical.",
			About:           "Your AI companion for everything.",
			Messages: []Message{
				{ID: "ai1", Text: "I can help you plan your next trip or generate images. What's on your mind?", Sender: SenderOther, Timestamp: "11:00 am"},
				{ID: "ai2", Text: "Can you tell me a joke?", Sender: SenderMe, Timestamp: "11:45 am", Status: StatusRead},
				{ID: "ai3", Text: "Why don't scientists trust atoms? Because they make up everything! ⚛️", Sender: SenderOther, Timestamp: "12:00 pm"},
			},
		},
	}
}
