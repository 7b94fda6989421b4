package site

// stylesheet is the single shared CSS asset. Kept inline so generated
// sites have no build-time asset pipeline.
const stylesheet = `:root {
    color-scheme: light;
}
body {
    font-family: 'Segoe UI', Tahoma, sans-serif;
    margin: 0;
    background: #f3f4f6;
    color: #1f2933;
}
a {
    color: #1d4ed8;
    text-decoration: none;
}
a:hover {
    text-decoration: underline;
}
.container {
    max-width: 1100px;
    margin: 0 auto;
    padding: 2.5rem 1.5rem 4rem;
}
header h1 {
    margin-bottom: 0.25rem;
}
.lead {
    color: #52606d;
    margin-top: 0;
}
.base-layout {
    display: flex;
    flex-wrap: wrap;
    gap: 2rem;
    align-items: flex-start;
}
.base-column {
    flex: 0 0 320px;
    display: grid;
    gap: 1.5rem;
}
.children-column {
    flex: 1 1 360px;
}
.children-grid {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
    gap: 1rem;
}
.person-card {
    background: white;
    border-radius: 10px;
    padding: 1rem 1.2rem;
    box-shadow: 0 8px 18px rgba(15, 23, 42, 0.08);
    border: 1px solid rgba(15, 23, 42, 0.08);
}
.person-card h2,
.person-card h3,
.person-card h4 {
    margin-top: 0;
    margin-bottom: 0.25rem;
}
.person-card p {
    margin: 0.15rem 0;
}
.person-card .meta {
    color: #64748b;
}
.person-details {
    margin-top: 2rem;
}
.person-details p {
    font-size: 1rem;
}
.person-biography {
    margin-top: 2rem;
}
.person-biography h2 {
    margin-bottom: 0.5rem;
}
.person-biography p {
    margin: 0.75rem 0;
    line-height: 1.6;
}
.person-children {
    margin-top: 2rem;
}
.person-children h2 {
    margin-bottom: 0.75rem;
}
.empty {
    color: #9aa5b1;
}
@media (max-width: 720px) {
    .base-layout {
        flex-direction: column;
    }
    .base-column {
        width: 100%;
    }
    .children-column {
        width: 100%;
    }
}
`
