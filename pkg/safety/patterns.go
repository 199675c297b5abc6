package safety

// keywordEntry maps surface variants to a canonical lemma. Matching runs
// against normalized text; a hit on any variant flags KEYWORD:<lemma>.
type keywordEntry struct {
	Lemma    string
	Variants []string
}

// patternEntry is one regex family, matched against normalized text.
type patternEntry struct {
	ID      string
	Pattern string
}

// builtinKeywords is the forbidden-token set: romantic escalation, AI
// self-disclosure, personal-info solicitation, meet-up and media
// solicitation, money, off-platform moves, secrecy, and self-harm.
// Roughly two hundred surface variants across the lemmas. Variants are
// written in normalized form (lowercase, leet already folded).
var builtinKeywords = []keywordEntry{
	// Romantic escalation
	{Lemma: "loveyou", Variants: []string{"love you", "love u", "luv you", "luv u", "lov u", "i love", "ily"}},
	{Lemma: "teamo", Variants: []string{"te amo", "te quiero mucho", "mi amor", "amor mio"}},
	{Lemma: "inlove", Variants: []string{"in love with", "falling for you", "fallen for you"}},
	{Lemma: "soulmate", Variants: []string{"soulmate", "soul mate", "meant to be together"}},
	{Lemma: "destiny", Variants: []string{"we are destined", "destiny brought us", "fate brought us together"}},
	{Lemma: "marryme", Variants: []string{"marry me", "marry you", "be my wife", "be my husband"}},
	{Lemma: "wifey", Variants: []string{"my wifey", "my hubby", "future wife", "future husband"}},
	{Lemma: "girlfriend", Variants: []string{"be my girlfriend", "be my gf", "my girlfriend now"}},
	{Lemma: "boyfriend", Variants: []string{"be my boyfriend", "be my bf", "my boyfriend now"}},
	{Lemma: "missyou", Variants: []string{"miss you so much", "missing you badly", "cant stop missing you"}},
	{Lemma: "obsessed", Variants: []string{"obsessed with you", "cant stop thinking about you", "think about you all day"}},
	{Lemma: "dreamofyou", Variants: []string{"dream about you", "dreamt of you", "dreaming of you"}},
	{Lemma: "cantlive", Variants: []string{"cant live without you", "cant be without you", "need you in my life"}},
	{Lemma: "foreveryours", Variants: []string{"forever yours", "yours forever", "always yours"}},
	{Lemma: "forevertogether", Variants: []string{"together forever", "never leave you", "never let you go"}},
	{Lemma: "onlyyou", Variants: []string{"only you matter", "you are my everything", "my everything"}},
	{Lemma: "mybaby", Variants: []string{"my baby girl", "my baby boy", "youre my baby"}},
	{Lemma: "jealous", Variants: []string{"so jealous when", "makes me jealous", "dont talk to other guys", "dont talk to other girls"}},
	{Lemma: "stolemyheart", Variants: []string{"you have my heart", "stole my heart", "my heart beats for"}},
	{Lemma: "kissyou", Variants: []string{"kiss you", "kissing you", "want a kiss"}},

	// AI self-disclosure
	{Lemma: "asanai", Variants: []string{"as an ai", "as a language model", "as an assistant"}},
	{Lemma: "iamai", Variants: []string{"i am an ai", "im an ai", "i am a bot", "im a bot", "i am artificial"}},
	{Lemma: "notreal", Variants: []string{"im not real", "i am not real", "im not a real person", "not a real human"}},
	{Lemma: "mymodel", Variants: []string{"my training data", "my model", "i was trained"}},
	{Lemma: "cannotfeel", Variants: []string{"i cannot feel", "i dont have feelings", "i have no emotions"}},
	{Lemma: "languagemodel", Variants: []string{"language model", "large language", "neural network"}},
	{Lemma: "vendorname", Variants: []string{"chatgpt", "openai", "gpt4", "my developers at"}},
	{Lemma: "generated", Variants: []string{"response was generated", "generated by a model", "automated response"}},
	{Lemma: "systemprompt", Variants: []string{"system prompt", "my instructions say", "i was programmed"}},
	{Lemma: "knowledgecutoff", Variants: []string{"knowledge cutoff", "context window", "token limit"}},

	// Personal-info solicitation
	{Lemma: "homeaddress", Variants: []string{"your address", "home address", "street address"}},
	{Lemma: "phonenumber", Variants: []string{"your phone number", "your number", "give me your number"}},
	{Lemma: "realname", Variants: []string{"your real name", "full name", "legal name"}},
	{Lemma: "familynames", Variants: []string{"your mothers name", "your parents names", "maiden name"}},
	{Lemma: "password", Variants: []string{"your password", "account password"}},
	{Lemma: "onetimecode", Variants: []string{"verification code", "one time code", "the code i sent", "otp code"}},
	{Lemma: "creditcard", Variants: []string{"credit card", "card number", "cvv"}},
	{Lemma: "bankaccount", Variants: []string{"bank account", "routing number", "iban"}},
	{Lemma: "socialsecurity", Variants: []string{"social security", "ssn", "passport number"}},
	{Lemma: "emailaddress", Variants: []string{"your email address", "personal email"}},
	{Lemma: "geolocation", Variants: []string{"share your location", "drop your location", "send your location", "live location"}},
	{Lemma: "workplace", Variants: []string{"where you work", "your workplace", "which company you work"}},
	{Lemma: "school", Variants: []string{"which school", "your school", "what school do"}},

	// Meet-up solicitation
	{Lemma: "meetup", Variants: []string{"meet up", "lets meet", "meet in person", "meet irl", "see you in person"}},
	{Lemma: "dateinvite", Variants: []string{"go on a date", "take you on a date", "dinner together", "drinks together"}},
	{Lemma: "comeover", Variants: []string{"come over", "come to my place", "come to mine"}},
	{Lemma: "visitme", Variants: []string{"visit me", "come visit", "fly to me"}},
	{Lemma: "flights", Variants: []string{"book a flight", "buy you a ticket", "plane ticket to"}},
	{Lemma: "hotel", Variants: []string{"book a hotel", "hotel room together", "get a room"}},
	{Lemma: "pickyouup", Variants: []string{"pick you up", "ill pick you", "come pick me"}},
	{Lemma: "myplace", Variants: []string{"at my place", "to my apartment", "to my house"}},

	// Media solicitation
	{Lemma: "sendpic", Variants: []string{"send a pic", "send me a pic", "send a photo", "send me a photo", "send nudes", "send a selfie"}},
	{Lemma: "explicitmedia", Variants: []string{"naked pic", "naked photo", "in lingerie", "in your underwear"}},
	{Lemma: "sexting", Variants: []string{"sext me", "sexting", "talk dirty"}},
	{Lemma: "videocall", Variants: []string{"video call", "videocall", "facetime", "cam with me"}},
	{Lemma: "camshow", Variants: []string{"turn on your camera", "open your cam", "cam show"}},
	{Lemma: "voicenote", Variants: []string{"voice note", "voice message", "hear your voice"}},

	// Money and scams
	{Lemma: "sendmoney", Variants: []string{"send me money", "need money urgently", "lend me some cash"}},
	{Lemma: "cryptoask", Variants: []string{"bitcoin wallet", "crypto wallet", "send me usdt"}},
	{Lemma: "paymentapp", Variants: []string{"paypal me", "cashapp", "venmo me", "zelle me"}},
	{Lemma: "investment", Variants: []string{"investment opportunity", "guaranteed returns", "double your money"}},

	// Off-platform moves and secrecy
	{Lemma: "offplatform", Variants: []string{"move to whatsapp", "text me on whatsapp", "add me on snapchat", "dm me on instagram", "message me on signal"}},
	{Lemma: "deletechat", Variants: []string{"delete this chat", "delete our messages", "clear this conversation"}},
	{Lemma: "oursecret", Variants: []string{"our little secret", "keep this between us", "dont tell anyone"}},
	{Lemma: "ageprobe", Variants: []string{"are you over 18", "are you underage", "how old are you really"}},

	// Self-harm and threats
	{Lemma: "selfharm", Variants: []string{"kill myself", "hurt myself", "end my life", "want to die"}},
	{Lemma: "threat", Variants: []string{"kill you", "hurt you badly", "make you pay for"}},
}

// builtinPatterns is the regex family set. Patterns run against normalized
// text, so they never need case classes or punctuation handling.
var builtinPatterns = []patternEntry{
	{ID: "address", Pattern: `where (do|does|did)?\s*(you|u)\s*(live|stay)`},
	{ID: "address_city", Pattern: `(what|which) (city|town|area|neighborhood) (are|r) (you|u)`},
	{ID: "location_now", Pattern: `where (are|r) (you|u) (right now|now|at)`},
	{ID: "send_pic", Pattern: `send (me )?(a |some |ur |your )?(pic|pics|photo|photos|selfie|nude)`},
	{ID: "show_me", Pattern: `show me (what|how) (you|u) look`},
	{ID: "ai_disclosure", Pattern: `(as|am|is) an? (ai|bot|robot|program|machine)`},
	{ID: "ai_pretend", Pattern: `(not|stop) (being|pretending to be) (a )?(real|human)`},
	{ID: "meet_phrase", Pattern: `(can|could|should|when) (we|i) (meet|hang out|link up)`},
	{ID: "meet_tonight", Pattern: `(meet|see) (you|u) (tonight|today|tomorrow|this week)`},
	{ID: "come_city", Pattern: `(come|fly|drive|travel) to (my|your|ur) (city|town|country)`},
	{ID: "phone_ask", Pattern: `(whats|what is|give me|send me) (your|ur) (number|phone|whatsapp)`},
	{ID: "age_ask", Pattern: `how old (are|r) (you|u) really`},
	{ID: "real_person", Pattern: `are (you|u) (even )?(real|a real person|human)`},
	{ID: "money_ask", Pattern: `(send|wire|transfer|lend) (me )?(some )?(money|cash|crypto|bitcoin)`},
	{ID: "gift_card", Pattern: `(gift ?card|itunes card|steam card|google play card)`},
	{ID: "social_handle", Pattern: `(whats|what is) (your|ur) (instagram|snapchat|insta|snap|telegram|signal)`},
	{ID: "alone_ask", Pattern: `are (you|u) (home )?alone`},
	{ID: "wearing_ask", Pattern: `what (are|r) (you|u) wearing`},
	{ID: "secret_keep", Pattern: `(dont|do not) tell (anyone|anybody|your)`},
	{ID: "relationship_label", Pattern: `(are|r) we (dating|together|a couple|exclusive)`},
	{ID: "forever_promise", Pattern: `(ill|i will) (always|never) (love|leave) (you|u)`},
	{ID: "live_together", Pattern: `(move in|live) (with me|together)`},
}

// heartEmoji is the heart-family set counted for the emoji-density rule.
var heartEmoji = []rune{
	'❤',  // ❤
	'❣',  // ❣
	'\U0001F9E1', // 🧡
	'\U0001F49B', // 💛
	'\U0001F49A', // 💚
	'\U0001F499', // 💙
	'\U0001F49C', // 💜
	'\U0001F5A4', // 🖤
	'\U0001F90D', // 🤍
	'\U0001F90E', // 🤎
	'\U0001F495', // 💕
	'\U0001F49E', // 💞
	'\U0001F493', // 💓
	'\U0001F497', // 💗
	'\U0001F496', // 💖
	'\U0001F498', // 💘
	'\U0001F49D', // 💝
	'\U0001F60D', // 😍
	'\U0001F618', // 😘
	'\U0001F970', // 🥰
	'\U0001F48B', // 💋
}
