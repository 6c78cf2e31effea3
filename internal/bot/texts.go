package bot

// Static reply blocks. These render as simple inline markup on the chat
// surface and stay legible as plain text if the markup is stripped.

const fallbackText = "I apologize, but I encountered an error processing your request. Please try again or contact the school office for assistance."

const accessDeniedText = "❌ I couldn't find a student record associated with your account. Please verify your student ID and try again."

const authPromptText = `🔐 **Authentication Required**

To access your child's information, please provide:
- Your registered email address
- Your child's student ID

Example: "My email is parent@email.com and my child's ID is 12345"

This ensures we maintain the privacy and security of student data.`

const authEmailMismatchText = `🔐 **Email Mismatch**

The email you provided doesn't match the account you're signed in with.

Please use the email address you registered and logged in with, together with your child's student ID.

Example: "My email is parent@email.com and my child's ID is 12345"`

const welcomeText = `✅ **Welcome to SchoolBot!**

Hello! I'm here to help you access information about your child's academic progress.

**What I can help you with:**
📊 **Attendance**: Check attendance records and statistics
📚 **Grades**: View test scores and academic performance
📅 **Schedule**: Get class timetables and exam dates
👨‍🏫 **Teachers**: Find teacher information and contact details
ℹ️ **School Info**: General school policies and procedures

**How to get started:**
- Ask about attendance: "Show me attendance for this month"
- Check grades: "What are the latest test scores?"
- View schedule: "What's the class schedule for today?"

What would you like to know about your child's education?`

const greetingText = `👋 **Hello! Welcome back to SchoolBot**

I'm here to help you stay informed about your child's academic progress and school activities.

**Quick Access:**
- 📊 Check attendance records
- 📚 View latest grades and test scores
- 📅 Get class schedules and timetables
- 👨‍🏫 Find teacher contact information
- ℹ️ Access school policies and information

**What would you like to know today?**
Just ask me about attendance, grades, schedules, or any school-related questions!

Example: "Show me this week's attendance" or "What are the latest math scores?"`

const helpText = `🤖 **How I Can Help You**

I'm SchoolBot, your assistant for accessing your child's school information. Here's what I can do:

**Student Information:**
- "Show me attendance for this month"
- "What are the latest test scores?"
- "How is my child performing in math?"

**Schedules & Timetables:**
- "What's the class schedule for today?"
- "When are the upcoming exams?"
- "What time does math class start?"

**Teacher Information:**
- "Who is the math teacher?"
- "How can I contact the science teacher?"
- "What subjects does Mrs. Smith teach?"

**School Information:**
- "What is the school's attendance policy?"
- "When are the school fees due?"
- "What events are coming up?"

**Tips for Better Results:**
- Be specific about what information you need
- Mention subject names when asking about grades
- Ask about specific time periods for attendance

**Privacy & Security:**
- I only share information about your registered child
- All conversations are secure and confidential
- Your data is protected according to school privacy policies

What would you like to know about your child's education?`

const policiesText = `📋 **School Policies & Rules**

**Academic Policies:**
- Minimum 75% attendance required for academic progression
- Late assignments accepted with 10% penalty per day
- Make-up tests available for excused absences only

**Behavioral Guidelines:**
- Respect for teachers, staff, and fellow students
- No mobile phones during class hours
- Proper school uniform required daily

**Safety Protocols:**
- Visitor registration required at main office
- Emergency contact information must be current
- Students must remain on campus during school hours

**Communication:**
- Parent-teacher conferences scheduled quarterly
- Progress reports sent home monthly
- Emergency notifications via registered contact methods

For detailed policy information, please refer to the student handbook or contact the school office.`

const feesText = `💰 **Fee Information**

**Tuition Structure:**
- Monthly tuition fees due by 5th of each month
- Late payment penalty of 2% after 10th of month
- Annual fees payable at beginning of academic year

**Payment Methods:**
- Online payment portal available 24/7
- Bank transfer to school account
- Cash payments accepted at school office

**Financial Assistance:**
- Scholarship programs available for merit students
- Fee concessions for economically disadvantaged families
- Installment payment plans upon request

**Contact Financial Office:**
- Office Hours: Monday-Friday, 9:00 AM - 3:00 PM
- Phone: Contact main office for financial department
- Email: Available through school office

For specific fee queries or payment issues, please contact the financial office directly.`

const eventsText = `🎉 **School Events & Programs**

**Upcoming Events:**
- Annual Sports Day: Coming in next quarter
- Science Fair: Student project submissions open
- Cultural Program: Talent show registrations available
- Parent-Teacher Meeting: Scheduled monthly

**Regular Programs:**
- Library reading sessions every Tuesday
- Computer lab access during lunch hours
- Art and craft workshops on Fridays
- Music lessons available after school

**Special Programs:**
- Summer camp registration opens in April
- Educational field trips planned quarterly
- Guest speaker sessions monthly
- Career guidance workshops for senior students

**Participation:**
- Students encouraged to participate in all events
- Parent volunteers welcome for event organization
- Registration typically required in advance

For event schedules and registration, please contact the activities coordinator through the school office.`

const generalInfoText = `ℹ️ **General School Information**

**School Hours:**
- Classes: 8:00 AM - 3:00 PM
- Office: 7:30 AM - 4:00 PM
- Library: 8:00 AM - 5:00 PM

**Contact Information:**
- Main Office: Available during office hours
- Emergency Contact: 24/7 emergency line available
- Website: Check school website for updates

**Facilities:**
- Well-equipped science laboratories
- Modern computer lab with internet access
- Comprehensive library with study areas
- Sports facilities including playground and gym

**Services:**
- School transportation available
- Cafeteria serving healthy meals
- Medical room with qualified nurse
- Counseling services for students

**Quick Help:**
- For attendance issues: Contact class teacher
- For grade concerns: Speak with subject teacher
- For general queries: Visit school office
- For emergencies: Use emergency contact number

What specific information would you like to know more about?`
