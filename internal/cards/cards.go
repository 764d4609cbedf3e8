// Package cards holds the static catalog of informational cards and the
// selection rule slices mapping labels to card identifiers. Everything here
// is built once at process start and never mutated.
package cards

import "covid-screening-bot/internal/model"

// ID is a stable card identifier.
type ID string

const (
	G1   ID = "G1"
	G2   ID = "G2"
	HF1  ID = "HF1"
	HF2  ID = "HF2"
	HF3  ID = "HF3"
	HF4  ID = "HF4"
	HF5  ID = "HF5"
	R3   ID = "R3"
	R4   ID = "R4"
	R5   ID = "R5"
	R6   ID = "R6"
	R7   ID = "R7"
	R8   ID = "R8"
	R9   ID = "R9"
	VA10 ID = "VA10"
)

func accordion(title, text string) []model.Block {
	return []model.Block{{Type: model.BlockAccordion, Title: title, Text: text}}
}

var cardG1 = accordion(
	"Stay up-to-date on COVID-19",
	`Helpful websites:<ul><li><a href="https://www.cdc.gov/coronavirus/2019-ncov/index.html" target="_blank">COVID-19 Resources For the Public (CDC)</a></li><li><a href="https://www.who.int/emergencies/diseases/novel-coronavirus-2019/advice-for-public" target="_blank">Advice For the Public (WHO)</a></li><li><a href="https://www.google.com/search?q=coronavirus" target="_blank">Help & Info (Google)</a></li></ul>Twitter feeds:<ul><li><a href="https://twitter.com/CDCgov" target="_blank">@CDCgov</a></li><li><a href="https://twitter.com/CDCemergency" target="_blank">@CDCemergency</a></li><li><a href="https://twitter.com/WHO" target="_blank">@WHO</a></li></ul>`,
)

var cardG2 = accordion(
	"Learn more about staying safe with current information",
	`Learn:<ul><li><a href="https://www.cdc.gov/coronavirus/2019-ncov/prepare/prevention.html" target="_blank">How to Protect Yourself (CDC)</a></li><li><a href="https://www.cdc.gov/coronavirus/2019-ncov/about/steps-when-sick.html" target="_blank">What to Do if Sick (CDC)</a></li><li><a href="https://www.cdc.gov/coronavirus/2019-ncov/faq.html" target="_blank">Questions & Answers (CDC)</a></li></ul>Watch:<ul><li><a href="https://www.youtube.com/watch?v=9Ay4u7OYOhA" target="_blank">Steps to Prevent COVID-19 (CDC)</a></li><li><a href="https://www.youtube.com/watch?v=d914EnpU4Fo" target="_blank">Hand-Washing (CDC)</a></li><li><a href="https://www.youtube.com/watch?v=qPoptbtBjkg" target="_blank">Managing COVID-19 At Home (CDC)</a></li></ul>`,
)

var cardHF1 = accordion(
	"Make a plan if you have diabetes",
	`You may be at higher risk of getting very sick from COVID-19. Take these steps:<ul><li>Gather phone numbers for your doctor and pharmacies, lists of medications, testing supplies, and prescription refills.</li><li>Have enough household items and groceries on hand in case you need to stay at home for a period of time.</li><li>Call your doctor if you develop new symptoms such as fever, cough, or shortness of breath.</li><li>Meet with your doctor through telehealth options, if available.</li></ul><a href="https://www.diabetes.org/diabetes/treatment-care/planning-sick-days/coronavirus" target="_blank">COVID-19 Resources</a> (Source: American Diabetes Association)`,
)

var cardHF2 = accordion(
	"Make a plan if you have heart disease",
	`Having a history of heart disease, hypertension, or stroke may put you at higher risk of getting very sick from COVID-19. Take these steps:<ul><li>Gather phone numbers for your doctor and pharmacies, lists of medications, testing supplies, and prescription refills.</li><li>Have enough household items and groceries on hand in case you need to stay at home for a period of time.</li><li>Recognize and manage stress.</li><li>Stay current with vaccinations, including pneumonia and flu shots.</li></ul><a href="https://www.heart.org/en/about-us/coronavirus-covid-19-resources" target="_blank">COVID-19 Resources</a> (Source: American Heart Association)`,
)

var cardHF3 = accordion(
	"Make a plan if you have lung disease",
	`You may be at higher risk of getting very sick from COVID-19. Take these steps:<ul><li>Keep a distance of least 6 feet from others.</li><li>Call your doctor if you develop new symptoms such as fever, cough, or shortness of breath.</li><li>Know and follow your Asthma Action Plan as needed.</li></ul><a href="https://www.lung.org/about-us/media/top-stories/update-covid-19.html" target="_blank">COVID-19 Resources</a> (Source: American Lung Association)`,
)

var cardHF4 = accordion(
	"Make a plan because of your age or health history",
	`You may be at higher risk of getting very sick from COVID-19. Take these steps:<ul><li>Gather phone numbers for your doctor and pharmacies, lists of medications, testing supplies, and prescription refills.</li><li>Have enough household items and groceries on hand in case you need to stay at home for a period of time.</li><li>Keep a distance of least 6 feet from others.</li><li>Call your doctor if you develop new symptoms such as fever, cough, or shortness of breath.</li></ul><a href="https://www.cdc.gov/coronavirus/2019-ncov/need-extra-precautions/older-adults.html" target="_blank">Older Adults</a> (Source: CDC)`,
)

var cardHF5 = accordion(
	"Reduce your exposure risk if you're a healthcare professional",
	`Take these steps:<ul><li>Give your patients face masks</li><li>Isolate patients with fever or cough</li><li>Use personal protective gear for all patient interactions</li><li>Use alcohol-based hand rub before and after contact with patients, potentially infectious material, and before using protective gear.</li></ul><a href="https://www.cdc.gov/coronavirus/2019-ncov/hcp/caring-for-patients.html" target="_blank">For Healthcare Teams</a> (Source: CDC)`,
)

var cardR3 = accordion(
	"Pay attention to symptoms",
	`Check your temperature twice a day. Typical symptoms include:<ul><li>Fever</li><li>Cough</li><li>Shortness of breath</li></ul><br>Get medical attention right away if you develop these emergency warning signs:<ul><li>Difficulty breathing</li><li>Constant chest pain or pressure</li><li>New confusion or difficulty waking up</li><li>Bluish lips or face</li></ul><br>COVID-19 can have other symptoms. Contact a medical provider for any severe or concerning symptoms.<br><a href="https://www.cdc.gov/coronavirus/2019-ncov/symptoms-testing/symptoms.html" target="_blank">Symptoms</a> (Source: CDC)`,
)

var cardR4 = accordion(
	"Take care of yourself at home",
	`Take these steps:<ul><li>Stay home except to get medical care. Avoid other people living with you.</li><li>Contact your healthcare provider within 24 hours. Discuss your symptoms before visiting.</li><li>Pay attention to your symptoms.</li><li>Wash your hands often with soap, scrubbing for at least 20 seconds each time.</li></ul><a href="https://www.cdc.gov/coronavirus/2019-ncov/if-you-are-sick/steps-when-sick.html" target="_blank">If You Are Sick</a> (Source: CDC)`,
)

var cardR5 = accordion(
	"Stay safe and prevent the spread of illness",
	`COVID-19 is spread through close contact with respiratory droplets that are produced when an infected person coughs or sneezes.<br>Take these steps:<ul><li>Wash your hands often with soap, scrubbing for at least 20 seconds each time.</li><li>Keep a distance of 6 feet from others outside your home.</li><li>Cover coughs and sneezes with a tissue or your bent arm.</li><li>Cover your mouth and nose with a cloth mask when you go out. Children under age 2 and people who have trouble breathing or might not be able to take off their own mask shouldn't wear one. Don't wear a mask intended for health care workers.</li></ul><a href="https://www.cdc.gov/coronavirus/2019-ncov/prepare/prevention.html" target="_blank">How to Protect Yourself</a> (Source: CDC)`,
)

var cardR6 = accordion(
	"Know the symptoms",
	`Symptoms include:<ul><li>Fever, with a temperature above 100.4 °F or 38 °C</li><li>Cough</li><li>Shortness of breath</li></ul>Get medical attention right away if you develop these emergency warning signs:<ul><li>Difficulty breathing</li><li>Constant chest pain or pressure</li><li>New confusion or difficulty waking up</li><li>Bluish lips or face</li></ul>COVID-19 can have other symptoms. Contact a medical provider for any severe or concerning symptoms.<br><a href="https://www.cdc.gov/coronavirus/2019-ncov/symptoms-testing/symptoms.html" target="_blank">Symptoms</a> (Source: CDC)`,
)

var cardR7 = accordion(
	"Keep distance from others",
	`Help slow the spread of COVID-19. Take these steps:<ul><li>Keep a distance of least 6 feet from others.</li><li>Avoid crowds or crowded spaces.</li></ul><a href="https://www.hopkinsmedicine.org/health/conditions-and-diseases/coronavirus/coronavirus-social-distancing-and-self-quarantine" target="_blank">Distancing & Quarantine</a> (Source: Johns Hopkins Medicine)`,
)

var cardR8 = accordion(
	"Stay inside, without visitors",
	`Help slow the spread of COVID-19 by staying home except to get medical care. Take these steps:<ul><li>Stay home until 14 days after last exposure</li><li>Avoid contact with people at higher risk for severe illness (unless they live in the same home and had the same exposure)</li><li>Keep a distance of at least 6 feet from others.</li></ul><a href="https://www.hopkinsmedicine.org/health/conditions-and-diseases/coronavirus/coronavirus-social-distancing-and-self-quarantine" target="_blank">Distancing & Quarantine</a> (Source: Johns Hopkins Medicine)`,
)

var cardR9 = accordion(
	"Pay attention to symptoms",
	`Keep track of how you feel.<br>Get medical attention right away if you develop these emergency warning signs:<ul><li>Difficulty breathing</li><li>Constant chest pain or pressure</li><li>New confusion or difficulty waking up</li><li>Bluish lips or face</li></ul>COVID-19 can have other symptoms. Contact a medical provider for any severe or concerning symptoms.<br><a href="https://www.cdc.gov/coronavirus/2019-ncov/symptoms-testing/symptoms.html?CDC_AA_refVal=https%3A%2F%2Fwww.cdc.gov%2Fcoronavirus%2F2019-ncov%2Fabout%2Fsymptoms.html" target="_blank">Symptoms</a> (Source: CDC)`,
)

var cardVA10 = accordion(
	"Call in the next 24 hours",
	`Call your healthcare provider<br><br>You have at least one symptom that may be related to COVID-19.<br>You may be at greater risk for complications from COVID-19.`,
)
