package catalog

const defaultGreeting = "Hi! I'm Vibe Coder's AI assistant. Ask me anything about Shahariar's projects, skills, or experience!"

var defaultReplies = map[Category][]string{
	Greeting: {
		"Hey there! I'm Vibe Coder's AI assistant. I can tell you about Shahariar's projects, skills, and experience. What would you like to know?",
		"Hi! I'm here to help you learn more about Vibe Coder. Feel free to ask about his projects, tech stack, or development journey!",
	},
	Projects: {
		"Shahariar has built some cool projects! His main ones are Temp Box (a temporary email service) and Tele Drive (a Telegram-powered cloud storage). Both showcase his skills in React, Node.js, and API integrations. Which one interests you more?",
		"Great question! Vibe Coder has created two standout projects: Temp Box for temporary emails and Tele Drive for cloud storage via Telegram. Both are live and demonstrate his full-stack capabilities!",
	},
	Skills: {
		"Shahariar's tech stack includes React, Next.js, Node.js, TypeScript, Tailwind CSS, and Supabase. He's particularly strong in frontend development and loves building clean, minimal UIs. He also works with Telegram Bot API for unique integrations!",
		"Vibe Coder specializes in full-stack development with a frontend focus. His main tools are React, Next.js, Node.js, and TypeScript. He's all about building fast, functional apps with clean design!",
	},
	Contact: {
		"You can reach Shahariar through several channels: Email (shovonali885@gmail.com), Telegram (@SHAON_VAI_21), or WhatsApp. He's based in Bangladesh (UTC+6) and loves connecting with fellow developers!",
		"Vibe Coder is active on multiple platforms! Best ways to contact: Telegram @SHAON_VAI_21, email shovonali885@gmail.com, or check out his 4 GitHub profiles. He's always excited to discuss development ideas!",
	},
	Availability: {
		"Currently, Shahariar is a student and not available for paid work. However, he's open to collaborations where contributors get credit but no financial compensation. He prefers working solo but welcomes creative partnerships!",
		"Vibe Coder is focused on his studies right now, so no paid projects. But he's definitely open to collaborations on interesting projects - just note that it's contributor-based, not paid work!",
	},
	Fallback: {
		"That's an interesting question! While I know a lot about Vibe Coder's work, I might not have that specific info. Feel free to reach out to him directly via Telegram @SHAON_VAI_21 or email!",
		"I'm still learning about all aspects of Shahariar's work! For detailed questions like that, I'd recommend contacting him directly. He's very responsive on Telegram and email!",
	},
}

// Default returns the built-in portfolio catalog.
func Default() *Catalog {
	c, err := New(defaultGreeting, defaultReplies)
	if err != nil {
		panic("catalog: invalid default catalog: " + err.Error())
	}
	return c
}
